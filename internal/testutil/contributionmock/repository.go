package contributionmock

import (
	"context"

	domain "savings-ledger/internal/domain/contribution"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.Contribution) error
	ListByCycleFn       func(ctx context.Context, cycleID string, status domain.Status) ([]domain.Contribution, error)
	ListRecentByCycleFn func(ctx context.Context, cycleID string, limit int) ([]domain.Contribution, error)
}

func (r *Repo) Create(ctx context.Context, c *domain.Contribution) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, c)
	}
	return nil
}

func (r *Repo) ListByCycle(ctx context.Context, cycleID string, status domain.Status) ([]domain.Contribution, error) {
	if r.ListByCycleFn != nil {
		return r.ListByCycleFn(ctx, cycleID, status)
	}
	return nil, nil
}

func (r *Repo) ListRecentByCycle(ctx context.Context, cycleID string, limit int) ([]domain.Contribution, error) {
	if r.ListRecentByCycleFn != nil {
		return r.ListRecentByCycleFn(ctx, cycleID, limit)
	}
	return nil, nil
}
