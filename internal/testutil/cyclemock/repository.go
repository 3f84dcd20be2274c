package cyclemock

import (
	"context"

	domain "savings-ledger/internal/domain/cycle"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.SavingsCycle) error
	GetActiveFn     func(ctx context.Context) (*domain.SavingsCycle, error)
	GetByCycleIDFn  func(ctx context.Context, cycleID string) (*domain.SavingsCycle, error)
	DeactivateAllFn func(ctx context.Context) error
}

func (r *Repo) Create(ctx context.Context, c *domain.SavingsCycle) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, c)
	}
	return nil
}

func (r *Repo) GetActive(ctx context.Context) (*domain.SavingsCycle, error) {
	if r.GetActiveFn != nil {
		return r.GetActiveFn(ctx)
	}
	return nil, context.Canceled
}

func (r *Repo) GetByCycleID(ctx context.Context, cycleID string) (*domain.SavingsCycle, error) {
	if r.GetByCycleIDFn != nil {
		return r.GetByCycleIDFn(ctx, cycleID)
	}
	return nil, context.Canceled
}

func (r *Repo) DeactivateAll(ctx context.Context) error {
	if r.DeactivateAllFn != nil {
		return r.DeactivateAllFn(ctx)
	}
	return nil
}
