package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/reschedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsMatchEngineDefaults(t *testing.T) {
	unsetenv(t, PathEnv)
	t.Setenv("CHAIRSIDE_DB", "/tmp/shop.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shop.db", cfg.DBPath)
	assert.False(t, cfg.LogUseCases)

	opts, err := cfg.ConflictOptions()
	require.NoError(t, err)
	assert.Equal(t, conflict.DefaultOptions(), opts)

	prefs, err := cfg.ReschedulePreferences()
	require.NoError(t, err)
	assert.Equal(t, reschedule.DefaultPreferences(), prefs)
}

func TestLoad_DefaultDBPathUnderHome(t *testing.T) {
	unsetenv(t, PathEnv)
	unsetenv(t, "CHAIRSIDE_DB")
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".chairside", "chairside.db"), cfg.DBPath)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	unsetenv(t, PathEnv)
	t.Setenv("CHAIRSIDE_DB", "/tmp/shop.db")
	t.Setenv("CHAIRSIDE_BUFFER_MIN", "5")
	t.Setenv("CHAIRSIDE_ALLOW_BACK_TO_BACK", "true")
	t.Setenv("CHAIRSIDE_STRATEGY_ORDER", "reassign_barber,reschedule")
	t.Setenv("CHAIRSIDE_MAX_CASCADE_DEPTH", "3")
	t.Setenv("CHAIRSIDE_SKIP_WEEKENDS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	opts, err := cfg.ConflictOptions()
	require.NoError(t, err)
	assert.Equal(t, 5, opts.BufferMin)
	assert.True(t, opts.AllowBackToBack)
	assert.Equal(t, []domain.StrategyKind{domain.StrategyReassignBarber, domain.StrategyReschedule}, opts.StrategyOrder)

	prefs, err := cfg.ReschedulePreferences()
	require.NoError(t, err)
	assert.Equal(t, 3, prefs.MaxCascadeDepth)
	assert.False(t, prefs.SkipWeekends)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chairside.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`db: /srv/chairside.db
log_use_cases: true
conflict:
  buffer_min: 10
reschedule:
  max_days_from_original: 3
`), 0o644))
	t.Setenv(PathEnv, path)
	unsetenv(t, "CHAIRSIDE_DB")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/chairside.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 10, cfg.Conflict.BufferMin)
	assert.Equal(t, 240, cfg.Conflict.MaxReschedulingRangeMin)
	assert.Equal(t, 3, cfg.Reschedule.MaxDaysFromOriginal)
}

func TestLoad_YAMLZeroAndFalseValuesStick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chairside.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`conflict:
  buffer_min: 0
  respect_working_hours: false
  respect_breaks: false
reschedule:
  skip_weekends: false
  prefer_same_barber: false
  max_cascade_depth: 0
`), 0o644))
	t.Setenv(PathEnv, path)
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"CHAIRSIDE_DB", "CHAIRSIDE_BUFFER_MIN", "CHAIRSIDE_RESPECT_WORKING_HOURS",
		"CHAIRSIDE_RESPECT_BREAKS", "CHAIRSIDE_SKIP_WEEKENDS", "CHAIRSIDE_PREFER_SAME_BARBER", "CHAIRSIDE_MAX_CASCADE_DEPTH"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	opts, err := cfg.ConflictOptions()
	require.NoError(t, err)
	assert.Equal(t, 0, opts.BufferMin)
	assert.False(t, opts.RespectWorkingHours)
	assert.False(t, opts.RespectBreaks)
	assert.Equal(t, 240, opts.MaxReschedulingRangeMin, "keys absent from the file keep their default")
	assert.Equal(t, conflict.DefaultOptions().StrategyOrder, opts.StrategyOrder)

	prefs, err := cfg.ReschedulePreferences()
	require.NoError(t, err)
	assert.False(t, prefs.SkipWeekends)
	assert.False(t, prefs.PreferSameBarber)
	assert.Equal(t, 0, prefs.MaxCascadeDepth)
	assert.Equal(t, 7, prefs.MaxDaysFromOriginal)
}

func TestLoad_EnvironmentBeatsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chairside.yaml")
	require.NoError(t, os.WriteFile(path, []byte("conflict:\n  buffer_min: 0\n"), 0o644))
	t.Setenv(PathEnv, path)
	t.Setenv("HOME", t.TempDir())
	unsetenv(t, "CHAIRSIDE_DB")
	t.Setenv("CHAIRSIDE_BUFFER_MIN", "20")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Conflict.BufferMin)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestConflictOptions_RejectsUnknownStrategy(t *testing.T) {
	unsetenv(t, PathEnv)
	unsetenv(t, "CHAIRSIDE_DB")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHAIRSIDE_STRATEGY_ORDER", "reschedule,teleport")

	cfg, err := Load()
	require.NoError(t, err)
	_, err = cfg.ConflictOptions()
	assert.ErrorContains(t, err, "teleport")
}

func TestReschedulePreferences_RejectsNegativeDepth(t *testing.T) {
	cfg := &Config{Reschedule: RescheduleConfig{MaxDaysFromOriginal: 7, MaxCascadeDepth: -1}}
	_, err := cfg.ReschedulePreferences()
	assert.ErrorContains(t, err, "cascade depth")
}

// unsetenv removes key for the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
