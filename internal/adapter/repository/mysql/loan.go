package mysql

import (
	"context"

	loanDomain "savings-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate issues SELECT ... FOR UPDATE. SQLite ignores the clause
// and serializes writers at the database level instead.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Order("issue_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) UpdateBalance(ctx context.Context, id uint64, expectedVersion uint64, amountRepaid decimal.Decimal, status loanDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"amount_repaid": amountRepaid,
			"status":        status,
			"version":       gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrConcurrentUpdate
	}
	return nil
}
