package mysql

import (
	"context"

	loanDomain "savings-ledger/internal/domain/loan"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) Create(ctx context.Context, rp *loanDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(rp).Error
}

// ListByLoanID returns the loan's repayments oldest first.
func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]loanDomain.Repayment, error) {
	var out []loanDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *RepaymentRepository) List(ctx context.Context) ([]loanDomain.Repayment, error) {
	var out []loanDomain.Repayment
	res := r.db.WithContext(ctx).Order("payment_date DESC, id DESC").Find(&out)
	return out, res.Error
}
