package uowmock

import (
	"context"
	"errors"

	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW satisfies uow.UnitOfWork without a database. Tx and LoanTx are
// optional overrides; when nil the call fails with errUnimplemented.
// Every call is recorded so tests can assert on transaction boundaries.
type UoW struct {
	Tx     func(ctx context.Context, fn func(r uow.Repos) error) error
	LoanTx func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error

	TxCalls     int
	LockedLoans []string
	Committed   int
	RolledBack  int
}

func New() *UoW { return &UoW{} }

// Over runs callbacks straight against repos. WithinLoanTx resolves the
// loan through repos.Loans.GetByLoanIDForUpdate, mirroring the row lock.
func Over(repos uow.Repos) *UoW {
	return &UoW{
		Tx: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		LoanTx: func(ctx context.Context, loanID string, fn func(uow.Repos, *loan.Loan) error) error {
			l, err := repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
			if err != nil {
				return err
			}
			return fn(repos, l)
		},
	}
}

// Failing returns a UoW whose transactions never start.
func Failing(err error) *UoW {
	return &UoW{
		Tx: func(context.Context, func(uow.Repos) error) error { return err },
		LoanTx: func(context.Context, string, func(uow.Repos, *loan.Loan) error) error {
			return err
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.TxCalls++
	if m.Tx == nil {
		return errUnimplemented
	}
	return m.settle(m.Tx(ctx, fn))
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	m.LockedLoans = append(m.LockedLoans, loanID)
	if m.LoanTx == nil {
		return errUnimplemented
	}
	return m.settle(m.LoanTx(ctx, loanID, fn))
}

func (m *UoW) settle(err error) error {
	if err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}
