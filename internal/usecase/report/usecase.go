// Package report gathers rows from storage and hands them to the ledger for
// aggregation.
package report

import (
	"context"
	"errors"
	"fmt"

	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"

	"gorm.io/gorm"
)

type Summary struct {
	CycleID string `json:"cycle_id,omitempty"`
	ledger.GroupSummary
}

type Usecase struct {
	members       member.Repository
	cycles        cycle.Repository
	contributions contribution.Repository
	loans         loan.Repository
	repayments    loan.RepaymentRepository
}

func NewUsecase(m member.Repository, cy cycle.Repository, c contribution.Repository, l loan.Repository, r loan.RepaymentRepository) *Usecase {
	return &Usecase{members: m, cycles: cy, contributions: c, loans: l, repayments: r}
}

// activeContributions returns the active cycle id and its contributions. With no
// active cycle both are empty.
func (u *Usecase) activeContributions(ctx context.Context, status contribution.Status) (string, []contribution.Contribution, error) {
	c, err := u.cycles.GetActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("get active cycle: %w", err)
	}
	rows, err := u.contributions.ListByCycle(ctx, c.CycleID, status)
	if err != nil {
		return "", nil, fmt.Errorf("list contributions: %w", err)
	}
	return c.CycleID, rows, nil
}

// Summary reports the group position for the active cycle. Loans and repayments
// are not cycle-scoped.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	cycleID, contribs, err := u.activeContributions(ctx, "")
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	reps, err := u.repayments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repayments: %w", err)
	}
	members, err := u.members.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return &Summary{
		CycleID:      cycleID,
		GroupSummary: ledger.SummarizeCycle(contribs, loans, reps, members),
	}, nil
}

// MemberTotals lists completed contributions per member in the active cycle.
func (u *Usecase) MemberTotals(ctx context.Context) ([]ledger.MemberTotal, error) {
	_, contribs, err := u.activeContributions(ctx, contribution.StatusCompleted)
	if err != nil {
		return nil, err
	}
	members, err := u.members.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	all, err := u.members.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	rows := ledger.MemberTotalsReport(contribs, members)
	// inactive contributors keep their names
	for i := range rows {
		if rows[i].FullName == ledger.UnknownMember {
			rows[i].FullName = ledger.ResolveMemberName(all, rows[i].MemberID)
		}
	}
	return rows, nil
}

func (u *Usecase) ContributionTrend(ctx context.Context) ([]ledger.MonthTotal, error) {
	_, contribs, err := u.activeContributions(ctx, contribution.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return ledger.MonthlyContributionTrend(contribs), nil
}

func (u *Usecase) LoanStatus(ctx context.Context) (map[loan.Status]int, error) {
	loans, err := u.loans.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return ledger.LoanStatusDistribution(loans), nil
}
