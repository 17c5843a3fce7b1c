package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/importer"
)

type BarberService interface {
	Create(ctx context.Context, b *domain.Barber) error
	GetByID(ctx context.Context, id string) (*domain.Barber, error)
	List(ctx context.Context, availableOnly bool) ([]*domain.Barber, error)
	Update(ctx context.Context, b *domain.Barber) error
	SetAvailable(ctx context.Context, id string, available bool) error
}

type AppointmentService interface {
	Book(ctx context.Context, req contract.BookRequest) (*contract.BookResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListByDate(ctx context.Context, day time.Time, barberID string) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	DayUtilization(ctx context.Context, day time.Time) ([]BarberUtilization, error)
}

// BarberUtilization is the booked share of one barber's working day.
type BarberUtilization struct {
	BarberID       string
	BarberName     string
	Appointments   int
	BookedMin      int
	UtilizationPct float64
}

type AnalyzeService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
	History(ctx context.Context, limit int) ([]*domain.AnalysisRun, error)
}

type RescheduleService interface {
	Reschedule(ctx context.Context, req contract.RescheduleRequest) (*contract.RescheduleResponse, error)
}

type ClientService interface {
	Get(ctx context.Context, clientID string) (*domain.ClientPreferences, error)
	List(ctx context.Context) ([]*domain.ClientPreferences, error)
	Set(ctx context.Context, p *domain.ClientPreferences) error
}

type RulesService interface {
	Get(ctx context.Context) (*domain.BusinessRules, error)
	Update(ctx context.Context, patch domain.BusinessRulesPatch) (*domain.BusinessRules, error)
}

// ImportResult holds the outcome of a snapshot import.
type ImportResult = contract.ImportResult

type ImportService interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
