package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
)

type clientService struct {
	repo     repository.ClientPreferencesRepo
	observer UseCaseObserver
}

func NewClientService(repo repository.ClientPreferencesRepo, observers ...UseCaseObserver) ClientService {
	return &clientService{repo: repo, observer: useCaseObserverOrNoop(observers)}
}

func (s *clientService) Get(ctx context.Context, clientID string) (*domain.ClientPreferences, error) {
	return s.repo.Get(ctx, clientID)
}

func (s *clientService) List(ctx context.Context) ([]*domain.ClientPreferences, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Set(ctx context.Context, p *domain.ClientPreferences) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"client_id": p.ClientID, "flexibility": p.FlexibilityScore}
	defer func() { reportUseCase(ctx, s.observer, "set-client-preferences", startedAt, fields, &err) }()

	if err = p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = startedAt
	return s.repo.Upsert(ctx, p)
}
