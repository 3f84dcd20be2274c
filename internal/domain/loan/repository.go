package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row until the surrounding transaction ends.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// List returns loans newest first; status "" means any.
	List(ctx context.Context, status Status) ([]Loan, error)
	// UpdateBalance writes amount_repaid and status only if the stored version
	// still equals expectedVersion, then bumps the version. Returns ErrConcurrentUpdate otherwise.
	UpdateBalance(ctx context.Context, id uint64, expectedVersion uint64, amountRepaid decimal.Decimal, status Status) error
}

type RepaymentRepository interface {
	Create(ctx context.Context, r *Repayment) error
	ListByLoanID(ctx context.Context, loanID string) ([]Repayment, error)
	List(ctx context.Context) ([]Repayment, error)
}
