package loan

import (
	"time"

	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type IssueLoanInput struct {
	BorrowerID   string
	Principal    decimal.Decimal
	InterestRate decimal.Decimal // percent
	IssueDate    time.Time       // zero means today
	DueDate      time.Time       // zero means IssueDate + 6 months
	Purpose      string
}

type RepayInput struct {
	Amount        decimal.Decimal
	PaymentDate   time.Time // zero means today
	PaymentMethod string
}

type LoanDTO struct {
	LoanID           string          `json:"loan_id"`
	BorrowerID       string          `json:"borrower_id"`
	BorrowerName     string          `json:"borrower_name"`
	PrincipalAmount  decimal.Decimal `json:"principal_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	TotalAmountDue   decimal.Decimal `json:"total_amount_due"`
	AmountRepaid     decimal.Decimal `json:"amount_repaid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IssueDate        time.Time       `json:"issue_date"`
	DueDate          time.Time       `json:"due_date"`
	Purpose          string          `json:"purpose,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

type RepaymentDTO struct {
	RepaymentID   string          `json:"repayment_id"`
	LoanID        string          `json:"loan_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
}

type RepayResult struct {
	Repayment RepaymentDTO `json:"repayment"`
	Loan      LoanDTO      `json:"loan"`
}

func toLoanDTO(l *loan.Loan, borrowerName string) LoanDTO {
	return LoanDTO{
		LoanID:           l.LoanID,
		BorrowerID:       l.BorrowerID,
		BorrowerName:     borrowerName,
		PrincipalAmount:  l.PrincipalAmount,
		InterestRate:     l.InterestRate,
		TotalAmountDue:   l.TotalAmountDue,
		AmountRepaid:     l.AmountRepaid,
		RemainingBalance: ledger.OutstandingBalance(*l),
		IssueDate:        l.IssueDate,
		DueDate:          l.DueDate,
		Purpose:          l.Purpose,
		Status:           string(l.Status),
		CreatedAt:        l.CreatedAt,
	}
}

func toRepaymentDTO(r *loan.Repayment) RepaymentDTO {
	return RepaymentDTO{
		RepaymentID:   r.RepaymentID,
		LoanID:        r.LoanID,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate,
		PaymentMethod: r.PaymentMethod,
	}
}
