package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
)

// loadRoster returns every barber as values, the shape the engines take.
func loadRoster(ctx context.Context, barbers repository.BarberRepo) ([]domain.Barber, error) {
	list, err := barbers.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("loading barbers: %w", err)
	}
	out := make([]domain.Barber, len(list))
	for i, b := range list {
		out[i] = *b
	}
	return out, nil
}

// loadBookings returns the appointments starting in [from, to) as values.
func loadBookings(ctx context.Context, appts repository.AppointmentRepo, from, to time.Time) ([]domain.Appointment, error) {
	list, err := appts.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading appointments: %w", err)
	}
	out := make([]domain.Appointment, len(list))
	for i, a := range list {
		out[i] = *a
	}
	return out, nil
}

// dayBounds returns [midnight, next midnight) of t's calendar day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := domain.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// loadDayBoard loads the roster and every booking on t's calendar day.
func loadDayBoard(ctx context.Context, barbers repository.BarberRepo, appts repository.AppointmentRepo, t time.Time) ([]domain.Barber, []domain.Appointment, error) {
	roster, err := loadRoster(ctx, barbers)
	if err != nil {
		return nil, nil, err
	}
	from, to := dayBounds(t)
	bookings, err := loadBookings(ctx, appts, from, to)
	if err != nil {
		return nil, nil, err
	}
	return roster, bookings, nil
}

// newestFirst orders appointments by booking time, most recent first, so the
// later booking of a clashing pair is the one flagged for a move.
func newestFirst(appts []domain.Appointment) []domain.Appointment {
	out := append([]domain.Appointment(nil), appts...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func removeByID(appts []domain.Appointment, id string) []domain.Appointment {
	out := make([]domain.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
