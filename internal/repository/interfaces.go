package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

type BarberRepo interface {
	Create(ctx context.Context, b *domain.Barber) error
	GetByID(ctx context.Context, id string) (*domain.Barber, error)
	List(ctx context.Context, availableOnly bool) ([]*domain.Barber, error)
	Update(ctx context.Context, b *domain.Barber) error
}

type AppointmentRepo interface {
	Create(ctx context.Context, a *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	// ListBetween returns appointments starting in [from, to), ordered by start.
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	ListByBarberBetween(ctx context.Context, barberID string, from, to time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type ClientPreferencesRepo interface {
	Get(ctx context.Context, clientID string) (*domain.ClientPreferences, error)
	List(ctx context.Context) ([]*domain.ClientPreferences, error)
	Upsert(ctx context.Context, p *domain.ClientPreferences) error
	// IncrementReschedulingCount bumps the counter, creating a default row
	// for clients never seen before.
	IncrementReschedulingCount(ctx context.Context, clientID string) error
}

type BusinessRulesRepo interface {
	Get(ctx context.Context) (*domain.BusinessRules, error)
	Save(ctx context.Context, r *domain.BusinessRules) error
}

type AnalysisRunRepo interface {
	Create(ctx context.Context, run *domain.AnalysisRun) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRun, error)
}
