package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/alexanderramin/chairside/internal/reschedule"
)

type rescheduleService struct {
	appointments repository.AppointmentRepo
	barbers      repository.BarberRepo
	clients      repository.ClientPreferencesRepo
	rules        repository.BusinessRulesRepo
	uow          db.UnitOfWork
	analyzer     *conflict.Engine
	prefs        reschedule.Preferences
	observer     UseCaseObserver
}

func NewRescheduleService(
	appointments repository.AppointmentRepo,
	barbers repository.BarberRepo,
	clients repository.ClientPreferencesRepo,
	rules repository.BusinessRulesRepo,
	uow db.UnitOfWork,
	analyzer *conflict.Engine,
	prefs reschedule.Preferences,
	observers ...UseCaseObserver,
) RescheduleService {
	return &rescheduleService{
		appointments: appointments,
		barbers:      barbers,
		clients:      clients,
		rules:        rules,
		uow:          uow,
		analyzer:     analyzer,
		prefs:        prefs,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *rescheduleService) Reschedule(ctx context.Context, req contract.RescheduleRequest) (resp *contract.RescheduleResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"apply": req.Apply, "force": req.Force}
	defer func() { reportUseCase(ctx, s.observer, "reschedule", startedAt, fields, &err) }()

	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}
	if req.Date == nil && len(req.AppointmentIDs) == 0 {
		return nil, &contract.RescheduleError{
			Code:    contract.RescheduleErrInvalidRequest,
			Message: "a date or appointment ids are required",
		}
	}

	rules, err := s.rules.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading business rules: %w", err)
	}
	engine, err := reschedule.NewEngine(s.prefs, *rules, s.analyzer)
	if err != nil {
		return nil, &contract.RescheduleError{Code: contract.RescheduleErrInternal, Message: err.Error()}
	}

	roster, err := loadRoster(ctx, s.barbers)
	if err != nil {
		return nil, err
	}

	var targets []domain.Appointment
	if len(req.AppointmentIDs) > 0 {
		targets, err = s.targetsByID(ctx, req.AppointmentIDs)
	} else {
		targets, err = s.conflictingOn(ctx, *req.Date, roster)
	}
	if err != nil {
		return nil, err
	}
	fields["targets"] = len(targets)
	if len(targets) == 0 {
		return nil, &contract.RescheduleError{
			Code:    contract.RescheduleErrNothingToDo,
			Message: "no conflicting appointments to reschedule",
		}
	}

	from, to := s.searchWindow(targets)
	existing, err := loadBookings(ctx, s.appointments, from, to)
	if err != nil {
		return nil, err
	}
	prefs, err := s.clientPreferences(ctx, targets)
	if err != nil {
		return nil, err
	}

	result, err := engine.Generate(ctx, reschedule.Request{
		Conflicting:       targets,
		Existing:          existing,
		Barbers:           roster,
		ClientPreferences: prefs,
		Now:               now,
	})
	if err != nil {
		return nil, err
	}
	fields["suggestions"] = len(result.Suggestions)
	fields["action"] = string(result.RecommendedAction)

	resp = &contract.RescheduleResponse{
		GeneratedAt:  startedAt,
		Result:       result,
		Appointments: targets,
		Barbers:      roster,
	}
	if !req.Apply {
		return resp, nil
	}

	if len(result.Suggestions) == 0 {
		return nil, &contract.RescheduleError{
			Code:    contract.RescheduleErrApplyRefused,
			Message: "no suggestions to apply",
		}
	}
	if result.RecommendedAction != domain.ActionAutoApply && !req.Force {
		return nil, &contract.RescheduleError{
			Code:    contract.RescheduleErrApplyRefused,
			Message: fmt.Sprintf("recommended action is %s; use --force to apply anyway", result.RecommendedAction),
		}
	}

	if err = s.apply(ctx, result.Suggestions, startedAt); err != nil {
		return nil, err
	}
	resp.Applied = true
	for _, sug := range result.Suggestions {
		resp.AppliedIDs = append(resp.AppliedIDs, sug.AppointmentID)
	}
	return resp, nil
}

func (s *rescheduleService) targetsByID(ctx context.Context, ids []string) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(ids))
	for _, id := range ids {
		a, err := s.appointments.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &contract.RescheduleError{
					Code:    contract.RescheduleErrUnknownAppointment,
					Message: fmt.Sprintf("appointment %s not found", id),
				}
			}
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// conflictingOn returns the scheduled appointments on day whose analysis
// reports a conflict. Each flagged booking leaves the board before the next
// check, so of two clashing bookings only the newer one is moved.
func (s *rescheduleService) conflictingOn(ctx context.Context, day time.Time, roster []domain.Barber) ([]domain.Appointment, error) {
	from, to := dayBounds(day)
	board, err := loadBookings(ctx, s.appointments, from, to)
	if err != nil {
		return nil, err
	}
	var out []domain.Appointment
	for _, a := range newestFirst(board) {
		if a.Status != domain.StatusScheduled {
			continue
		}
		analysis := s.analyzer.Analyze(a, board, roster)
		if !analysis.HasConflicts {
			continue
		}
		out = append(out, a)
		board = removeByID(board, a.ID)
	}
	return out, nil
}

// searchWindow covers every day a candidate slot may fall on.
func (s *rescheduleService) searchWindow(targets []domain.Appointment) (time.Time, time.Time) {
	first, last := targets[0].StartTime, targets[0].StartTime
	for _, a := range targets[1:] {
		if a.StartTime.Before(first) {
			first = a.StartTime
		}
		if a.StartTime.After(last) {
			last = a.StartTime
		}
	}
	days := s.prefs.MaxDaysFromOriginal
	from, _ := dayBounds(first)
	_, to := dayBounds(last)
	return from.AddDate(0, 0, -days), to.AddDate(0, 0, days)
}

func (s *rescheduleService) clientPreferences(ctx context.Context, targets []domain.Appointment) (map[string]domain.ClientPreferences, error) {
	out := make(map[string]domain.ClientPreferences)
	for _, a := range targets {
		key := a.ClientKey()
		if key == "" {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}
		p, err := s.clients.Get(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("loading client preferences: %w", err)
		}
		out[key] = *p
	}
	return out, nil
}

// apply moves every primary suggestion and bumps each client's
// rescheduling count in one transaction. Cascade placeholders are advisory
// and are not written.
func (s *rescheduleService) apply(ctx context.Context, suggestions []reschedule.Suggestion, now time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txAppts := repository.NewSQLiteAppointmentRepo(tx)
		txClients := repository.NewSQLiteClientPreferencesRepo(tx)

		for _, sug := range suggestions {
			a, err := txAppts.GetByID(ctx, sug.AppointmentID)
			if err != nil {
				return err
			}
			moved := a.MoveTo(sug.NewStartTime, sug.NewBarberID, sug.NewDurationMin)
			moved.UpdatedAt = now
			if err := txAppts.Update(ctx, &moved); err != nil {
				return fmt.Errorf("moving appointment %s: %w", a.ID, err)
			}
			if key := a.ClientKey(); key != "" {
				if err := txClients.IncrementReschedulingCount(ctx, key); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
