package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/alexanderramin/chairside/internal/reschedule"
	"github.com/alexanderramin/chairside/internal/testutil"
	"github.com/stretchr/testify/require"
)

// 2025-03-17 is a Monday. Times are local so stored clocks read back
// unchanged.
var (
	monday  = time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)
	weekAgo = time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
)

type repos struct {
	db           *sql.DB
	barbers      *repository.SQLiteBarberRepo
	appointments *repository.SQLiteAppointmentRepo
	clients      *repository.SQLiteClientPreferencesRepo
	rules        *repository.SQLiteBusinessRulesRepo
	runs         *repository.SQLiteAnalysisRunRepo
	engine       *conflict.Engine
}

func setupRepos(t *testing.T) *repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &repos{
		db:           database,
		barbers:      repository.NewSQLiteBarberRepo(database),
		appointments: repository.NewSQLiteAppointmentRepo(database),
		clients:      repository.NewSQLiteClientPreferencesRepo(database),
		rules:        repository.NewSQLiteBusinessRulesRepo(database),
		runs:         repository.NewSQLiteAnalysisRunRepo(database),
		engine:       conflict.MustNewEngine(conflict.DefaultOptions()),
	}
}

func (r *repos) rescheduleService() RescheduleService {
	uow := testutil.NewTestUoW(r.db)
	return NewRescheduleService(r.appointments, r.barbers, r.clients, r.rules, uow, r.engine, reschedule.DefaultPreferences())
}

func (r *repos) addBarber(t *testing.T, name string, opts ...testutil.BarberOption) *domain.Barber {
	t.Helper()
	b := testutil.NewTestBarber(name, opts...)
	require.NoError(t, r.barbers.Create(context.Background(), b))
	return b
}

func (r *repos) addAppointment(t *testing.T, barberID string, start time.Time, minutes int, opts ...testutil.AppointmentOption) *domain.Appointment {
	t.Helper()
	a := testutil.NewTestAppointment(barberID, start, minutes, opts...)
	require.NoError(t, r.appointments.Create(context.Background(), a))
	return a
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
