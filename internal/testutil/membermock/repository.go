package membermock

import (
	"context"

	domain "savings-ledger/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, m *domain.Member) error
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.Member, error)
	ListFn          func(ctx context.Context, activeOnly bool) ([]domain.Member, error)
	SetActiveFn     func(ctx context.Context, memberID string, active bool) error
}

func (r *Repo) Create(ctx context.Context, m *domain.Member) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, m)
	}
	return nil
}

func (r *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if r.GetByMemberIDFn != nil {
		return r.GetByMemberIDFn(ctx, memberID)
	}
	return nil, context.Canceled
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	if r.GetByEmailFn != nil {
		return r.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (r *Repo) List(ctx context.Context, activeOnly bool) ([]domain.Member, error) {
	if r.ListFn != nil {
		return r.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

func (r *Repo) SetActive(ctx context.Context, memberID string, active bool) error {
	if r.SetActiveFn != nil {
		return r.SetActiveFn(ctx, memberID, active)
	}
	return nil
}
