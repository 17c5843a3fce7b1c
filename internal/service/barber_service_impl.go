package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/google/uuid"
)

type barberService struct {
	repo     repository.BarberRepo
	observer UseCaseObserver
}

func NewBarberService(repo repository.BarberRepo, observers ...UseCaseObserver) BarberService {
	return &barberService{repo: repo, observer: useCaseObserverOrNoop(observers)}
}

func (s *barberService) Create(ctx context.Context, b *domain.Barber) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"breaks": len(b.Breaks)}
	defer func() { reportUseCase(ctx, s.observer, "create-barber", startedAt, fields, &err) }()

	if err = b.Validate(); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	fields["barber_id"] = b.ID
	b.CreatedAt = startedAt
	b.UpdatedAt = startedAt
	return s.repo.Create(ctx, b)
}

func (s *barberService) GetByID(ctx context.Context, id string) (*domain.Barber, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *barberService) List(ctx context.Context, availableOnly bool) ([]*domain.Barber, error) {
	return s.repo.List(ctx, availableOnly)
}

func (s *barberService) Update(ctx context.Context, b *domain.Barber) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		reportUseCase(ctx, s.observer, "update-barber", startedAt, map[string]any{"barber_id": b.ID}, &err)
	}()

	if err = b.Validate(); err != nil {
		return err
	}
	b.UpdatedAt = startedAt
	return s.repo.Update(ctx, b)
}

func (s *barberService) SetAvailable(ctx context.Context, id string, available bool) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"barber_id": id, "available": available}
	defer func() { reportUseCase(ctx, s.observer, "set-barber-availability", startedAt, fields, &err) }()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	b.Available = available
	b.UpdatedAt = startedAt
	return s.repo.Update(ctx, b)
}
