package app

import (
	"context"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/importer"
)

type AnalyzeUseCase interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
}

type BookAppointmentUseCase interface {
	Book(ctx context.Context, req BookRequest) (*BookResponse, error)
}

type RescheduleUseCase interface {
	Reschedule(ctx context.Context, req RescheduleRequest) (*RescheduleResponse, error)
}

type ImportResult struct {
	Barbers      []*domain.Barber
	Appointments int
	Clients      int
	RulesUpdated bool
}

type ImportSnapshotUseCase interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
