package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/domain/uow"
	"savings-ledger/internal/logger"
	"savings-ledger/pkg/id"

	"gorm.io/gorm"
)

// DefaultTermMonths applies when no due date is given.
const DefaultTermMonths = 6

type Usecase struct {
	repo       loan.Repository
	repayments loan.RepaymentRepository
	members    member.Repository
	uow        uow.UnitOfWork
	now        func() time.Time
}

func NewUsecase(r loan.Repository, rp loan.RepaymentRepository, m member.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, repayments: rp, members: m, uow: tx, now: time.Now}
}

func (u *Usecase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (u *Usecase) Issue(ctx context.Context, in IssueLoanInput) (*LoanDTO, error) {
	borrower, err := u.members.GetByMemberID(ctx, in.BorrowerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, member.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get borrower: %w", err)
	}
	if !borrower.IsActive {
		return nil, member.ErrInactive
	}

	issue := in.IssueDate
	if issue.IsZero() {
		issue = u.today()
	}
	due := in.DueDate
	if due.IsZero() {
		due = issue.AddDate(0, DefaultTermMonths, 0)
	}

	l, err := ledger.IssueLoan(in.Principal, in.InterestRate, issue.UTC(), due.UTC())
	if err != nil {
		return nil, err
	}
	l.LoanID = id.NewID32()
	l.BorrowerID = borrower.MemberID
	l.Purpose = in.Purpose

	if err := u.repo.Create(ctx, &l); err != nil {
		return nil, fmt.Errorf("create loan: %w", err)
	}
	logger.Info().
		Str("loan_id", l.LoanID).
		Str("borrower_id", l.BorrowerID).
		Str("total_due", l.TotalAmountDue.StringFixed(2)).
		Msg("loan issued")

	dto := toLoanDTO(&l, borrower.FullName)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, loan.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	dto := toLoanDTO(l, u.borrowerName(ctx, l.BorrowerID))
	return &dto, nil
}

func (u *Usecase) borrowerName(ctx context.Context, memberID string) string {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		return ledger.UnknownMember
	}
	return m.FullName
}

// List returns loans newest first; an empty status lists all.
func (u *Usecase) List(ctx context.Context, status loan.Status) ([]LoanDTO, error) {
	loans, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	members, err := u.members.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, toLoanDTO(&loans[i], ledger.ResolveMemberName(members, loans[i].BorrowerID)))
	}
	return out, nil
}

// Repay records a repayment and updates the loan balance in one transaction.
// The loan row is locked, the stored total is checked against the repayment log,
// and the balance write is conditional on the version read under the lock.
func (u *Usecase) Repay(ctx context.Context, loanID string, in RepayInput) (*RepayResult, error) {
	method, err := loan.NormalizeMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	paid := in.PaymentDate
	if paid.IsZero() {
		paid = u.today()
	}

	var (
		updated loan.Loan
		rep     loan.Repayment
	)
	err = u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		history, err := r.Repayments.ListByLoanID(ctx, l.LoanID)
		if err != nil {
			return fmt.Errorf("load repayments: %w", err)
		}
		if err := ledger.Reconcile(*l, history); err != nil {
			logger.Error().
				Str("loan_id", l.LoanID).
				Str("amount_repaid", l.AmountRepaid.StringFixed(2)).
				Int("repayments", len(history)).
				Msg("loan does not reconcile with repayment log")
			return err
		}

		updated, rep, err = ledger.ApplyRepayment(*l, in.Amount, paid.UTC(), method)
		if err != nil {
			return err
		}
		if err := r.Loans.UpdateBalance(ctx, l.ID, l.Version, updated.AmountRepaid, updated.Status); err != nil {
			return err
		}
		updated.Version = l.Version + 1

		rep.RepaymentID = id.NewID32()
		return r.Repayments.Create(ctx, &rep)
	})
	if err != nil {
		if errors.Is(err, loan.ErrConcurrentUpdate) {
			logger.Warn().Str("loan_id", loanID).Msg("repayment lost a concurrent update")
		}
		return nil, err
	}

	logger.Info().
		Str("loan_id", updated.LoanID).
		Str("repayment_id", rep.RepaymentID).
		Str("amount", rep.Amount.StringFixed(2)).
		Str("status", string(updated.Status)).
		Msg("repayment applied")

	return &RepayResult{
		Repayment: toRepaymentDTO(&rep),
		Loan:      toLoanDTO(&updated, u.borrowerName(ctx, updated.BorrowerID)),
	}, nil
}

// ListRepayments returns a loan's repayments oldest first.
func (u *Usecase) ListRepayments(ctx context.Context, loanID string) ([]RepaymentDTO, error) {
	if _, err := u.repo.GetByLoanID(ctx, loanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, fmt.Errorf("get loan: %w", err)
	}
	rs, err := u.repayments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("list repayments: %w", err)
	}
	out := make([]RepaymentDTO, 0, len(rs))
	for i := range rs {
		out = append(out, toRepaymentDTO(&rs[i]))
	}
	return out, nil
}
