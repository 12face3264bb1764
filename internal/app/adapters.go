package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fitbuddy/internal/db"
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/repository"
)

// profileStore adapts ProfileRepo to the engine's port. A missing row
// surfaces as a fresh default profile rather than an error.
type profileStore struct {
	repo repository.ProfileRepo
}

func (s *profileStore) Load(ctx context.Context) (*domain.Profile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewDefaultProfile(), nil
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

func (s *profileStore) Save(ctx context.Context, profile *domain.Profile) error {
	return s.repo.Upsert(ctx, profile)
}

// planStore writes a plan and its exercise rows in one transaction.
type planStore struct {
	uow db.UnitOfWork
}

func (s *planStore) SavePlan(ctx context.Context, plan *domain.Plan) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePlanRepo(tx).Create(ctx, plan)
	})
}

// scheduleEntryStore adapts ScheduleRepo to the scheduling pipeline.
type scheduleEntryStore struct {
	repo repository.ScheduleRepo
}

func (s *scheduleEntryStore) CreateEntry(ctx context.Context, e *domain.ScheduleEntry) error {
	return s.repo.Create(ctx, e)
}
