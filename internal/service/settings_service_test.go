package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/alexanderramin/chairside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesService_UpdateMergesPartially(t *testing.T) {
	r := setupRepos(t)
	svc := NewRulesService(r.rules)
	ctx := context.Background()

	notice := 6
	rules, err := svc.Update(ctx, domain.BusinessRulesPatch{MinimumNoticeHours: &notice})
	require.NoError(t, err)
	assert.Equal(t, 6, rules.MinimumNoticeHours)
	assert.Equal(t, 85.0, rules.TargetUtilizationPct)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *rules, *stored)
}

func TestRulesService_RejectsInvalidMerge(t *testing.T) {
	r := setupRepos(t)
	svc := NewRulesService(r.rules)
	ctx := context.Background()

	bad := 150.0
	_, err := svc.Update(ctx, domain.BusinessRulesPatch{TargetUtilizationPct: &bad})
	require.Error(t, err)

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 85.0, stored.TargetUtilizationPct)
}

func TestClientService_Set(t *testing.T) {
	r := setupRepos(t)
	svc := NewClientService(r.clients)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, testutil.NewTestClientPreferences("Jo", testutil.WithPreferredDays(time.Friday))))
	assert.Error(t, svc.Set(ctx, testutil.NewTestClientPreferences("Jo", testutil.WithFlexibility(2))))
	assert.Error(t, svc.Set(ctx, testutil.NewTestClientPreferences("")))

	got, err := svc.Get(ctx, "Jo")
	require.NoError(t, err)
	assert.Equal(t, 0.5, got.FlexibilityScore)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBarberService_CreateAndAvailability(t *testing.T) {
	r := setupRepos(t)
	svc := NewBarberService(r.barbers)
	ctx := context.Background()

	b := testutil.NewTestBarber("Ana")
	b.ID = ""
	require.NoError(t, svc.Create(ctx, b))
	assert.NotEmpty(t, b.ID)

	require.NoError(t, svc.SetAvailable(ctx, b.ID, false))
	available, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, available)

	assert.Error(t, svc.Create(ctx, testutil.NewTestBarber("")))
	assert.ErrorIs(t, svc.SetAvailable(ctx, "missing", true), repository.ErrNotFound)
}

func TestBarberAndClientServices_ReportWrites(t *testing.T) {
	r := setupRepos(t)
	obs := &recordingObserver{}
	barbers := NewBarberService(r.barbers, obs)
	clients := NewClientService(r.clients, obs)
	ctx := context.Background()

	b := testutil.NewTestBarber("Ana")
	require.NoError(t, barbers.Create(ctx, b))
	assert.Equal(t, "create-barber", obs.last().Name)
	assert.True(t, obs.last().Success)
	assert.Equal(t, b.ID, obs.last().Fields["barber_id"])

	require.Error(t, barbers.SetAvailable(ctx, "missing", false))
	assert.Equal(t, "set-barber-availability", obs.last().Name)
	assert.False(t, obs.last().Success)

	require.Error(t, clients.Set(ctx, testutil.NewTestClientPreferences("")))
	assert.Equal(t, "set-client-preferences", obs.last().Name)
	assert.False(t, obs.last().Success)

	_, err := barbers.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, obs.events, 3, "reads are not reported")
}

func TestLogUseCaseObserver_WritesOneRecord(t *testing.T) {
	var buf bytes.Buffer
	r := setupRepos(t)
	svc := NewRulesService(r.rules, NewLogUseCaseObserver(&buf))

	weekends := true
	_, err := svc.Update(context.Background(), domain.BusinessRulesPatch{AllowWeekendScheduling: &weekends})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=update-rules")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "app=chairside")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestLogUseCaseObserver_RefusedBookingIsWarning(t *testing.T) {
	var buf bytes.Buffer
	svc, r := setupAppointmentService(t, NewLogUseCaseObserver(&buf))
	b := r.addBarber(t, "Ana")
	r.addAppointment(t, b.ID, testutil.At(monday, 10, 0), 60)

	a := testutil.NewTestAppointment(b.ID, testutil.At(monday, 10, 0), 60)
	_, err := svc.Book(context.Background(), contract.BookRequest{Appointment: a})
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "error_code=ANALYZE_BOOKING_BLOCKED")
}

func TestUseCaseEvent_ErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("apply: %w", &contract.RescheduleError{Code: contract.RescheduleErrApplyRefused})
	assert.Equal(t, "RESCHEDULE_APPLY_REFUSED", UseCaseEvent{Err: wrapped}.ErrorCode())
	assert.Equal(t, "", UseCaseEvent{Err: errors.New("disk full")}.ErrorCode())
	assert.Equal(t, "", UseCaseEvent{}.ErrorCode())
}
