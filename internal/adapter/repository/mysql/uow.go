package mysql

import (
	"context"
	"errors"

	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Members:       &MemberRepository{db: tx},
		Cycles:        &CycleRepository{db: tx},
		Contributions: &ContributionRepository{db: tx},
		Loans:         &LoanRepository{db: tx},
		Repayments:    &RepaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the loan row up-front to prevent races
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrNotFound
		}
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
