package loan

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrConcurrentUpdate means the loan row changed between read and conditional write.
	ErrConcurrentUpdate = errors.New("loan was modified concurrently")
	ErrInvalidMethod    = errors.New("unsupported payment method")
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaid   Status = "paid"
)

type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string          `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID      string          `gorm:"column:borrower_id;type:char(32);not null;index:idx_loans_borrower" json:"borrower_id"`
	PrincipalAmount decimal.Decimal `gorm:"column:principal_amount;type:decimal(18,2);not null" json:"principal_amount"`
	InterestRate    decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,2);not null" json:"interest_rate"`
	TotalAmountDue  decimal.Decimal `gorm:"column:total_amount_due;type:decimal(18,2);not null" json:"total_amount_due"`
	AmountRepaid    decimal.Decimal `gorm:"column:amount_repaid;type:decimal(18,2);not null;default:0" json:"amount_repaid"`
	IssueDate       time.Time       `gorm:"column:issue_date;type:date;not null" json:"issue_date"`
	DueDate         time.Time       `gorm:"column:due_date;type:date;not null" json:"due_date"`
	Purpose         string          `gorm:"column:purpose;type:text" json:"purpose,omitempty"`
	Status          Status          `gorm:"column:status;size:16;not null;default:'active';index" json:"status"`
	// Version increments on every balance write; used for conditional updates.
	Version   uint64    `gorm:"column:version;not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Table: loan_repayments. Append-only; the sum per loan equals loans.amount_repaid.
type Repayment struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RepaymentID   string          `gorm:"column:repayment_id;type:char(32);not null;uniqueIndex:ux_repayments_repayment_id" json:"repayment_id"`
	LoanID        string          `gorm:"column:loan_id;type:char(32);not null;index" json:"loan_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaymentDate   time.Time       `gorm:"column:payment_date;type:date;not null" json:"payment_date"`
	PaymentMethod string          `gorm:"column:payment_method;size:32;not null" json:"payment_method"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Repayment) TableName() string { return "loan_repayments" }

var paymentMethods = map[string]struct{}{
	"cash":          {},
	"bank_transfer": {},
	"upi":           {},
	"other":         {},
}

// NormalizeMethod maps display labels like "Bank Transfer" to stored keys like "bank_transfer".
func NormalizeMethod(raw string) (string, error) {
	m := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
	if _, ok := paymentMethods[m]; !ok {
		return "", ErrInvalidMethod
	}
	return m, nil
}
