// Package ledger derives balances and aggregates from raw savings-group rows.
//
// Every function is pure: inputs are plain slices already read from storage and
// nothing here touches I/O. Callers persist results.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrLoanNotActive = errors.New("loan is not active")
	// ErrInconsistentState means the repayment log disagrees with the loan's amount_repaid.
	ErrInconsistentState = errors.New("loan repayments do not reconcile with amount repaid")
	ErrInvalidRate       = errors.New("interest rate must be between 0 and 100")
	ErrInvalidSchedule   = errors.New("due date must not be before issue date")
)

// UnknownMember is shown for references to members that do not exist.
const UnknownMember = "Unknown"

var (
	hundred    = decimal.NewFromInt(100)
	maxRatePct = decimal.NewFromInt(100)
)

type GroupSummary struct {
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalLoansIssued   decimal.Decimal `json:"total_loans_issued"`
	TotalLoansRepaid   decimal.Decimal `json:"total_loans_repaid"`
	ActiveMembers      int             `json:"active_members"`
	CurrentFund        decimal.Decimal `json:"current_fund"`
}

// SummarizeCycle computes the group position. Only completed contributions and
// active loans count; every repayment counts. The fund may go negative.
func SummarizeCycle(contributions []contribution.Contribution, loans []loan.Loan, repayments []loan.Repayment, members []member.Member) GroupSummary {
	s := GroupSummary{
		TotalContributions: decimal.Zero,
		TotalLoansIssued:   decimal.Zero,
		TotalLoansRepaid:   decimal.Zero,
	}
	for _, c := range contributions {
		if c.Status == contribution.StatusCompleted {
			s.TotalContributions = s.TotalContributions.Add(c.Amount)
		}
	}
	for _, l := range loans {
		if l.Status == loan.StatusActive {
			s.TotalLoansIssued = s.TotalLoansIssued.Add(l.PrincipalAmount)
		}
	}
	for _, r := range repayments {
		s.TotalLoansRepaid = s.TotalLoansRepaid.Add(r.Amount)
	}
	for _, m := range members {
		if m.IsActive {
			s.ActiveMembers++
		}
	}
	s.CurrentFund = s.TotalContributions.Add(s.TotalLoansRepaid).Sub(s.TotalLoansIssued)
	return s
}

// IssueLoan builds a new active loan with simple interest:
// total due = principal + principal * rate / 100, interest rounded half-up to cents.
func IssueLoan(principal, ratePct decimal.Decimal, issueDate, dueDate time.Time) (loan.Loan, error) {
	if !principal.IsPositive() {
		return loan.Loan{}, ErrInvalidAmount
	}
	if ratePct.IsNegative() || ratePct.GreaterThan(maxRatePct) {
		return loan.Loan{}, ErrInvalidRate
	}
	if dueDate.Before(issueDate) {
		return loan.Loan{}, ErrInvalidSchedule
	}
	interest := principal.Mul(ratePct).Div(hundred).Round(2)
	return loan.Loan{
		PrincipalAmount: principal,
		InterestRate:    ratePct,
		TotalAmountDue:  principal.Add(interest),
		AmountRepaid:    decimal.Zero,
		IssueDate:       issueDate,
		DueDate:         dueDate,
		Status:          loan.StatusActive,
	}, nil
}

// ApplyRepayment returns the loan after adding amount, plus the repayment row to
// append. The input loan is not modified. Overpayment is kept as-is.
func ApplyRepayment(l loan.Loan, amount decimal.Decimal, paidOn time.Time, method string) (loan.Loan, loan.Repayment, error) {
	if !amount.IsPositive() {
		return l, loan.Repayment{}, ErrInvalidAmount
	}
	if l.Status != loan.StatusActive {
		return l, loan.Repayment{}, ErrLoanNotActive
	}
	next := l
	next.AmountRepaid = l.AmountRepaid.Add(amount)
	next.Status = StatusFor(next.AmountRepaid, l.TotalAmountDue)

	return next, loan.Repayment{
		LoanID:        l.LoanID,
		Amount:        amount,
		PaymentDate:   paidOn,
		PaymentMethod: method,
	}, nil
}

// StatusFor is the loan status implied by a repaid total.
func StatusFor(repaid, totalDue decimal.Decimal) loan.Status {
	if repaid.GreaterThanOrEqual(totalDue) {
		return loan.StatusPaid
	}
	return loan.StatusActive
}

// Reconcile checks that the loan's running total equals the sum of its repayment log.
// Repayments for other loans are ignored.
func Reconcile(l loan.Loan, repayments []loan.Repayment) error {
	sum := decimal.Zero
	for _, r := range repayments {
		if r.LoanID == l.LoanID {
			sum = sum.Add(r.Amount)
		}
	}
	if !sum.Equal(l.AmountRepaid) {
		return ErrInconsistentState
	}
	return nil
}

// OutstandingBalance is total due minus repaid; negative when overpaid.
func OutstandingBalance(l loan.Loan) decimal.Decimal {
	return l.TotalAmountDue.Sub(l.AmountRepaid)
}

func ValidateContribution(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
