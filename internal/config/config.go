// Package config loads runtime settings from the environment or a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/reschedule"
	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable that points at an optional YAML config file.
const PathEnv = "CHAIRSIDE_CONFIG"

type Config struct {
	DBPath      string `yaml:"db" env:"CHAIRSIDE_DB"`
	LogUseCases bool   `yaml:"log_use_cases" env:"CHAIRSIDE_LOG_USE_CASES"`

	Conflict   ConflictConfig   `yaml:"conflict"`
	Reschedule RescheduleConfig `yaml:"reschedule"`
}

type ConflictConfig struct {
	BufferMin               int      `yaml:"buffer_min" env:"CHAIRSIDE_BUFFER_MIN"`
	AllowBackToBack         bool     `yaml:"allow_back_to_back" env:"CHAIRSIDE_ALLOW_BACK_TO_BACK"`
	RespectWorkingHours     bool     `yaml:"respect_working_hours" env:"CHAIRSIDE_RESPECT_WORKING_HOURS"`
	RespectBreaks           bool     `yaml:"respect_breaks" env:"CHAIRSIDE_RESPECT_BREAKS"`
	MaxReschedulingRangeMin int      `yaml:"max_reschedule_range_min" env:"CHAIRSIDE_MAX_RESCHEDULE_RANGE_MIN"`
	StrategyOrder           []string `yaml:"strategy_order" env:"CHAIRSIDE_STRATEGY_ORDER" env-separator:","`
}

type RescheduleConfig struct {
	MaxDaysFromOriginal  int  `yaml:"max_days_from_original" env:"CHAIRSIDE_MAX_DAYS_FROM_ORIGINAL"`
	SkipWeekends         bool `yaml:"skip_weekends" env:"CHAIRSIDE_SKIP_WEEKENDS"`
	PreferSameBarber     bool `yaml:"prefer_same_barber" env:"CHAIRSIDE_PREFER_SAME_BARBER"`
	AllowShorterDuration bool `yaml:"allow_shorter_duration" env:"CHAIRSIDE_ALLOW_SHORTER_DURATION"`
	MaxCascadeDepth      int  `yaml:"max_cascade_depth" env:"CHAIRSIDE_MAX_CASCADE_DEPTH"`
}

// Defaults returns a Config carrying the engine defaults. Load decodes the
// file and environment over it, so a zero or false value written in YAML
// sticks.
func Defaults() Config {
	opts := conflict.DefaultOptions()
	order := make([]string, 0, len(opts.StrategyOrder))
	for _, k := range opts.StrategyOrder {
		order = append(order, string(k))
	}
	prefs := reschedule.DefaultPreferences()
	return Config{
		Conflict: ConflictConfig{
			BufferMin:               opts.BufferMin,
			AllowBackToBack:         opts.AllowBackToBack,
			RespectWorkingHours:     opts.RespectWorkingHours,
			RespectBreaks:           opts.RespectBreaks,
			MaxReschedulingRangeMin: opts.MaxReschedulingRangeMin,
			StrategyOrder:           order,
		},
		Reschedule: RescheduleConfig{
			MaxDaysFromOriginal:  prefs.MaxDaysFromOriginal,
			SkipWeekends:         prefs.SkipWeekends,
			PreferSameBarber:     prefs.PreferSameBarber,
			AllowShorterDuration: prefs.AllowShorterDuration,
			MaxCascadeDepth:      prefs.MaxCascadeDepth,
		},
	}
}

// Load reads the file named by CHAIRSIDE_CONFIG when set, then applies
// environment overrides. Without a file only the environment is read.
func Load() (*Config, error) {
	cfg := Defaults()
	if path := os.Getenv(PathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".chairside", "chairside.db")
	}
	return &cfg, nil
}

// ConflictOptions builds engine options, validated.
func (c *Config) ConflictOptions() (conflict.Options, error) {
	opts := conflict.DefaultOptions()
	opts.BufferMin = c.Conflict.BufferMin
	opts.AllowBackToBack = c.Conflict.AllowBackToBack
	opts.RespectWorkingHours = c.Conflict.RespectWorkingHours
	opts.RespectBreaks = c.Conflict.RespectBreaks
	opts.MaxReschedulingRangeMin = c.Conflict.MaxReschedulingRangeMin
	if len(c.Conflict.StrategyOrder) > 0 {
		opts.StrategyOrder = make([]domain.StrategyKind, 0, len(c.Conflict.StrategyOrder))
		for _, s := range c.Conflict.StrategyOrder {
			opts.StrategyOrder = append(opts.StrategyOrder, domain.StrategyKind(s))
		}
	}
	if err := opts.Validate(); err != nil {
		return conflict.Options{}, fmt.Errorf("conflict settings: %w", err)
	}
	return opts, nil
}

func (c *Config) ReschedulePreferences() (reschedule.Preferences, error) {
	prefs := reschedule.DefaultPreferences()
	prefs.MaxDaysFromOriginal = c.Reschedule.MaxDaysFromOriginal
	prefs.SkipWeekends = c.Reschedule.SkipWeekends
	prefs.PreferSameBarber = c.Reschedule.PreferSameBarber
	prefs.AllowShorterDuration = c.Reschedule.AllowShorterDuration
	prefs.MaxCascadeDepth = c.Reschedule.MaxCascadeDepth
	if err := prefs.Validate(); err != nil {
		return reschedule.Preferences{}, fmt.Errorf("reschedule settings: %w", err)
	}
	return prefs, nil
}
