package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/google/uuid"
)

type appointmentService struct {
	appointments repository.AppointmentRepo
	barbers      repository.BarberRepo
	uow          db.UnitOfWork
	engine       *conflict.Engine
	observer     UseCaseObserver
}

func NewAppointmentService(
	appointments repository.AppointmentRepo,
	barbers repository.BarberRepo,
	uow db.UnitOfWork,
	engine *conflict.Engine,
	observers ...UseCaseObserver,
) AppointmentService {
	return &appointmentService{
		appointments: appointments,
		barbers:      barbers,
		uow:          uow,
		engine:       engine,
		observer:     useCaseObserverOrNoop(observers),
	}
}

// Book checks the appointment against the day's bookings and stores it.
// The check and the insert share one transaction.
func (s *appointmentService) Book(ctx context.Context, req contract.BookRequest) (resp *contract.BookResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"force": req.Force}
	defer func() { reportUseCase(ctx, s.observer, "book-appointment", startedAt, fields, &err) }()

	a := req.Appointment
	if a == nil {
		return nil, &contract.AnalyzeError{Code: contract.AnalyzeErrInvalidCandidate, Message: "appointment is required"}
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = domain.StatusScheduled
	}
	a.CreatedAt = startedAt
	a.UpdatedAt = startedAt
	if vErr := a.Validate(); vErr != nil {
		return nil, &contract.AnalyzeError{Code: contract.AnalyzeErrInvalidCandidate, Message: vErr.Error()}
	}
	fields["barber_id"] = a.BarberID

	var analysis conflict.Analysis
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBarbers := repository.NewSQLiteBarberRepo(tx)
		txAppts := repository.NewSQLiteAppointmentRepo(tx)

		roster, bookings, err := loadDayBoard(ctx, txBarbers, txAppts, a.StartTime)
		if err != nil {
			return err
		}
		if domain.FindBarber(roster, a.BarberID) == nil {
			return &contract.AnalyzeError{
				Code:    contract.AnalyzeErrInvalidCandidate,
				Message: fmt.Sprintf("barber %q is not on the roster", a.BarberID),
			}
		}

		analysis = s.engine.Analyze(*a, bookings, roster)
		fields["risk_score"] = analysis.RiskScore
		if blocksBooking(analysis.MaxSeverity()) && !req.Force {
			return &contract.AnalyzeError{
				Code:      contract.AnalyzeErrBookingBlocked,
				Message:   blockedMessage(analysis.Conflicts),
				Conflicts: analysis.Conflicts,
			}
		}
		return txAppts.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	return &contract.BookResponse{
		Appointment: a,
		Analysis:    analysis,
		Forced:      req.Force && blocksBooking(analysis.MaxSeverity()),
	}, nil
}

func blocksBooking(sev domain.Severity) bool {
	return sev == domain.SeverityHigh || sev == domain.SeverityCritical
}

func blockedMessage(conflicts []conflict.Conflict) string {
	var parts []string
	for _, c := range conflicts {
		if blocksBooking(c.Severity) {
			parts = append(parts, c.Description)
		}
	}
	return "booking refused: " + strings.Join(parts, "; ") + " (use --force to book anyway)"
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// ListByDate returns the appointments on day's calendar date, optionally for
// one barber.
func (s *appointmentService) ListByDate(ctx context.Context, day time.Time, barberID string) ([]*domain.Appointment, error) {
	from, to := dayBounds(day)
	if barberID != "" {
		return s.appointments.ListByBarberBetween(ctx, barberID, from, to)
	}
	return s.appointments.ListBetween(ctx, from, to)
}

func (s *appointmentService) Cancel(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, domain.StatusCancelled)
}

func (s *appointmentService) SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if !domain.ValidAppointmentStatuses[string(status)] {
		return fmt.Errorf("invalid appointment status %q", status)
	}
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("appointment %s not found: %w", id, err)
		}
		return err
	}
	return nil
}

// DayUtilization reports every barber's booked share of day. Cancelled and
// no-show bookings do not count.
func (s *appointmentService) DayUtilization(ctx context.Context, day time.Time) ([]BarberUtilization, error) {
	roster, bookings, err := loadDayBoard(ctx, s.barbers, s.appointments, day)
	if err != nil {
		return nil, err
	}
	out := make([]BarberUtilization, 0, len(roster))
	for i := range roster {
		b := &roster[i]
		var mine []domain.Appointment
		booked := 0
		for _, a := range bookings {
			if a.BarberID == b.ID && a.Status.Blocking() {
				mine = append(mine, a)
				booked += a.Range().Minutes()
			}
		}
		out = append(out, BarberUtilization{
			BarberID:       b.ID,
			BarberName:     b.Name,
			Appointments:   len(mine),
			BookedMin:      booked,
			UtilizationPct: conflict.Utilization(b, 0, mine),
		})
	}
	return out, nil
}
