package uow

import (
	"context"

	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
)

// Repos are bound to the transaction passed to the callback.
type Repos struct {
	Members       member.Repository
	Cycles        cycle.Repository
	Contributions contribution.Repository
	Loans         loan.Repository
	Repayments    loan.RepaymentRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock loan first, then pass it in; returns loan.ErrNotFound when absent
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
