package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/repository"
)

type rulesService struct {
	repo     repository.BusinessRulesRepo
	observer UseCaseObserver
}

func NewRulesService(repo repository.BusinessRulesRepo, observers ...UseCaseObserver) RulesService {
	return &rulesService{repo: repo, observer: useCaseObserverOrNoop(observers)}
}

func (s *rulesService) Get(ctx context.Context) (*domain.BusinessRules, error) {
	return s.repo.Get(ctx)
}

// Update merges patch over the stored rules; omitted fields are kept.
func (s *rulesService) Update(ctx context.Context, patch domain.BusinessRulesPatch) (rules *domain.BusinessRules, err error) {
	startedAt := time.Now().UTC()
	defer func() { reportUseCase(ctx, s.observer, "update-rules", startedAt, nil, &err) }()

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading business rules: %w", err)
	}
	merged := current.Merge(patch)
	if err = merged.Validate(); err != nil {
		return nil, err
	}
	if err = s.repo.Save(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}
