package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/importer"
	"github.com/alexanderramin/chairside/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService persists snapshots through uow; every import is one
// transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { reportUseCase(ctx, s.observer, "import-snapshot", startedAt, fields, &err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	snap, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}
	fields["barbers"] = len(snap.Barbers)
	fields["appointments"] = len(snap.Appointments)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBarbers := repository.NewSQLiteBarberRepo(tx)
		txAppts := repository.NewSQLiteAppointmentRepo(tx)
		txClients := repository.NewSQLiteClientPreferencesRepo(tx)
		txRules := repository.NewSQLiteBusinessRulesRepo(tx)

		for _, b := range snap.Barbers {
			if err := txBarbers.Create(ctx, b); err != nil {
				return fmt.Errorf("creating barber %q: %w", b.Name, err)
			}
		}

		for _, a := range snap.Appointments {
			if err := txAppts.Create(ctx, a); err != nil {
				return fmt.Errorf("creating appointment for %q: %w", a.ClientName, err)
			}
		}

		for _, c := range snap.Clients {
			if err := txClients.Upsert(ctx, c); err != nil {
				return fmt.Errorf("saving client %q: %w", c.ClientID, err)
			}
		}

		if snap.Rules != nil {
			current, err := txRules.Get(ctx)
			if err != nil {
				return err
			}
			merged := current.Merge(*snap.Rules)
			if err := merged.Validate(); err != nil {
				return err
			}
			if err := txRules.Save(ctx, &merged); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Barbers:      snap.Barbers,
		Appointments: len(snap.Appointments),
		Clients:      len(snap.Clients),
		RulesUpdated: snap.Rules != nil,
	}, nil
}
