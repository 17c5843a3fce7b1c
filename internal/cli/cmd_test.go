package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/alexanderramin/chairside/internal/reschedule"
	"github.com/alexanderramin/chairside/internal/service"
	"github.com/alexanderramin/chairside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-17 is a Monday; the clock is pinned a week earlier so every
// booking is outside the notice window.
var (
	monday  = time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)
	weekAgo = time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
)

type testEnv struct {
	app          *App
	barbers      *repository.SQLiteBarberRepo
	appointments *repository.SQLiteAppointmentRepo
	clients      *repository.SQLiteClientPreferencesRepo
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	barberRepo := repository.NewSQLiteBarberRepo(db)
	apptRepo := repository.NewSQLiteAppointmentRepo(db)
	clientRepo := repository.NewSQLiteClientPreferencesRepo(db)
	rulesRepo := repository.NewSQLiteBusinessRulesRepo(db)
	runRepo := repository.NewSQLiteAnalysisRunRepo(db)
	engine := conflict.MustNewEngine(conflict.DefaultOptions())

	return &testEnv{
		app: &App{
			Barbers:      service.NewBarberService(barberRepo),
			Appointments: service.NewAppointmentService(apptRepo, barberRepo, uow, engine),
			Analyzer:     service.NewAnalyzeService(apptRepo, barberRepo, runRepo, engine),
			Rescheduler: service.NewRescheduleService(apptRepo, barberRepo, clientRepo, rulesRepo, uow,
				engine, reschedule.DefaultPreferences()),
			Clients: service.NewClientService(clientRepo),
			Rules:   service.NewRulesService(rulesRepo),
			Import:  service.NewImportService(uow),
			Now:     func() time.Time { return weekAgo },
		},
		barbers:      barberRepo,
		appointments: apptRepo,
		clients:      clientRepo,
	}
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// executeCmd runs the root command and captures its output without styling.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func (e *testEnv) addBarber(t *testing.T, name string) *domain.Barber {
	t.Helper()
	b := testutil.NewTestBarber(name)
	require.NoError(t, e.barbers.Create(context.Background(), b))
	return b
}

func TestRootCmd_NoArgsShowsHelp(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app)
	require.NoError(t, err)
	assert.Contains(t, out, "chairside")
	assert.Contains(t, out, "reschedule")
}

func TestBarberCmd_AddListShow(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "barber", "add", "--name", "Ana",
		"--hours", "09:00-18:00", "--days", "mon,tue",
		"--break", "13:00-13:30@mon", "--break-label", "lunch", "--skill", "fade")
	require.NoError(t, err)
	assert.Contains(t, out, "Added barber Ana")

	barbers, err := env.barbers.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, barbers, 1)
	ana := barbers[0]
	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday}, ana.WorkingHours.Days)
	require.Len(t, ana.Breaks, 1)
	assert.Equal(t, []time.Weekday{time.Monday}, ana.Breaks[0].Days)
	assert.Equal(t, []string{"fade"}, ana.Skills)

	out, err = executeCmd(t, env.app, "barber", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
	assert.Contains(t, out, "09:00-18:00")

	out, err = executeCmd(t, env.app, "barber", "show", "ana")
	require.NoError(t, err)
	assert.Contains(t, out, "lunch")
	assert.Contains(t, out, ana.ID)

	_, err = executeCmd(t, env.app, "barber", "availability", ana.ID[:6], "off")
	require.NoError(t, err)
	available, err := env.barbers.List(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestBarberCmd_Errors(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "barber", "add")
	assert.ErrorContains(t, err, "name")

	_, err = executeCmd(t, env.app, "barber", "add", "--name", "Ana", "--hours", "18:00-09:00")
	assert.ErrorContains(t, err, "--hours")

	_, err = executeCmd(t, env.app, "barber", "add", "--name", "Ana", "--break", "13:00-13:30@someday")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "barber", "show", "nobody")
	assert.ErrorContains(t, err, "barber not found")
}

func TestAppointmentCmd_BookingGuard(t *testing.T) {
	env := testApp(t)
	env.addBarber(t, "Ana")

	out, err := executeCmd(t, env.app, "appointment", "add", "--barber", "Ana",
		"--start", "2025-03-17 10:00", "--duration", "60", "--client", "Al")
	require.NoError(t, err)
	assert.Contains(t, out, "Booked Mon Mar 17 10:00-11:00 for Al")

	out, err = executeCmd(t, env.app, "appointment", "add", "--barber", "Ana",
		"--start", "2025-03-17 10:00", "--duration", "30", "--client", "Bo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYZE_BOOKING_BLOCKED")
	assert.Contains(t, out, "double_booking")

	out, err = executeCmd(t, env.app, "appt", "add", "--barber", "Ana",
		"--start", "2025-03-17 10:00", "--duration", "30", "--client", "Bo", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "--force despite")

	appts, err := env.appointments.ListBetween(context.Background(), monday, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestAppointmentCmd_InvalidInput(t *testing.T) {
	env := testApp(t)
	env.addBarber(t, "Ana")

	_, err := executeCmd(t, env.app, "appointment", "add", "--barber", "Ana",
		"--start", "next tuesday", "--duration", "30", "--client", "Al")
	assert.ErrorContains(t, err, "invalid --start")

	_, err = executeCmd(t, env.app, "appointment", "add", "--barber", "Ana",
		"--start", "2025-03-17 10:00", "--client", "Al")
	assert.ErrorContains(t, err, "ANALYZE_INVALID_CANDIDATE")

	_, err = executeCmd(t, env.app, "appointment", "add", "--barber", "Zed",
		"--start", "2025-03-17 10:00", "--duration", "30", "--client", "Al")
	assert.ErrorContains(t, err, "barber not found")
}

func TestAppointmentCmd_ListCancelStatus(t *testing.T) {
	env := testApp(t)
	ana := env.addBarber(t, "Ana")
	a := testutil.NewTestAppointment(ana.ID, testutil.At(monday, 9, 0), 90, testutil.WithClient("Al"))
	require.NoError(t, env.appointments.Create(context.Background(), a))

	out, err := executeCmd(t, env.app, "appointment", "list", "--date", "2025-03-17")
	require.NoError(t, err)
	assert.Contains(t, out, "09:00-10:30")
	assert.Contains(t, out, "Al")
	assert.Contains(t, out, "UTILIZATION")
	assert.Contains(t, out, "1h 30m")

	out, err = executeCmd(t, env.app, "appointment", "list", "--date", "2025-03-18")
	require.NoError(t, err)
	assert.Contains(t, out, "No appointments.")

	_, err = executeCmd(t, env.app, "appointment", "status", a.ID, "completed")
	require.NoError(t, err)
	stored, err := env.appointments.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)

	_, err = executeCmd(t, env.app, "appointment", "status", a.ID, "pending")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "appointment", "cancel", a.ID)
	require.NoError(t, err)
	stored, err = env.appointments.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
}

func TestCheckCmd_CandidateAndHistory(t *testing.T) {
	env := testApp(t)
	ana := env.addBarber(t, "Ana")
	a := testutil.NewTestAppointment(ana.ID, testutil.At(monday, 10, 0), 60, testutil.WithClient("Al"))
	require.NoError(t, env.appointments.Create(context.Background(), a))

	out, err := executeCmd(t, env.app, "check", "--barber", "Ana",
		"--start", "2025-03-17 14:00", "--duration", "30", "--client", "Bo")
	require.NoError(t, err)
	assert.Contains(t, out, "No conflicts.")

	out, err = executeCmd(t, env.app, "check", "--barber", "Ana",
		"--start", "2025-03-17 10:00", "--duration", "30", "--client", "Bo")
	require.NoError(t, err)
	assert.Contains(t, out, "double_booking")
	assert.Contains(t, out, "needs --force")

	out, err = executeCmd(t, env.app, "check", "--appointment", a.ID, "--no-record")
	require.NoError(t, err)
	assert.Contains(t, out, "Al with Ana")

	out, err = executeCmd(t, env.app, "check", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "TOP STRATEGY")
	assert.Len(t, regexp.MustCompile(`Mon Mar 17 1[04]:00`).FindAllString(out, -1), 2, "the unrecorded check is not listed")
}
