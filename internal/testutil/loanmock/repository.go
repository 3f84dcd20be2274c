package loanmock

import (
	"context"

	domain "savings-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

var (
	_ domain.Repository          = (*Repo)(nil)
	_ domain.RepaymentRepository = (*RepaymentRepo)(nil)
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled so forgotten stubs fail loudly.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn                 func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	UpdateBalanceFn        func(ctx context.Context, id, expectedVersion uint64, amountRepaid decimal.Decimal, status domain.Status) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) UpdateBalance(ctx context.Context, id, expectedVersion uint64, amountRepaid decimal.Decimal, status domain.Status) error {
	if m.UpdateBalanceFn != nil {
		return m.UpdateBalanceFn(ctx, id, expectedVersion, amountRepaid, status)
	}
	return nil
}

// RepaymentRepo is a function-backed mock that satisfies domain.RepaymentRepository.
type RepaymentRepo struct {
	CreateFn       func(ctx context.Context, r *domain.Repayment) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Repayment, error)
	ListFn         func(ctx context.Context) ([]domain.Repayment, error)
}

func (m *RepaymentRepo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *RepaymentRepo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *RepaymentRepo) List(ctx context.Context) ([]domain.Repayment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
