package contribution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/logger"
	"savings-ledger/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidStatus = errors.New("contribution status must be completed or pending")

const DefaultRecentLimit = 10

type Usecase struct {
	contributions contribution.Repository
	cycles        cycle.Repository
	members       member.Repository
	now           func() time.Time
}

func NewUsecase(c contribution.Repository, cy cycle.Repository, m member.Repository) *Usecase {
	return &Usecase{contributions: c, cycles: cy, members: m, now: time.Now}
}

func (u *Usecase) Record(ctx context.Context, in RecordInput) (*ContributionDTO, error) {
	if err := ledger.ValidateContribution(in.Amount); err != nil {
		return nil, err
	}
	method, err := loan.NormalizeMethod(in.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status := contribution.Status(in.Status)
	switch status {
	case "":
		status = contribution.StatusCompleted
	case contribution.StatusCompleted, contribution.StatusPending:
	default:
		return nil, ErrInvalidStatus
	}

	m, err := u.members.GetByMemberID(ctx, in.MemberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, member.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	if !m.IsActive {
		return nil, member.ErrInactive
	}

	cycleID, err := u.resolveCycle(ctx, in.CycleID)
	if err != nil {
		return nil, err
	}

	paid := in.PaymentDate
	if paid.IsZero() {
		paid = u.now()
	}
	desc := in.Description
	if desc == "" {
		desc = "Contribution by " + m.FullName
	}

	c := &contribution.Contribution{
		ContributionID: id.NewID32(),
		MemberID:       m.MemberID,
		CycleID:        cycleID,
		Amount:         in.Amount,
		PaymentDate:    paid.UTC(),
		PaymentMethod:  method,
		Status:         status,
		Description:    desc,
	}
	if err := u.contributions.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}
	logger.Info().
		Str("contribution_id", c.ContributionID).
		Str("member_id", c.MemberID).
		Str("amount", c.Amount.StringFixed(2)).
		Msg("contribution recorded")

	dto := toDTO(c, m.FullName)
	return &dto, nil
}

func (u *Usecase) resolveCycle(ctx context.Context, cycleID string) (string, error) {
	var (
		c   *cycle.SavingsCycle
		err error
	)
	if cycleID == "" {
		c, err = u.cycles.GetActive(ctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", cycle.ErrNoActiveCycle
		}
	} else {
		c, err = u.cycles.GetByCycleID(ctx, cycleID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", cycle.ErrNotFound
		}
	}
	if err != nil {
		return "", fmt.Errorf("resolve cycle: %w", err)
	}
	return c.CycleID, nil
}

// ListRecent returns the active cycle's newest contributions with member names.
func (u *Usecase) ListRecent(ctx context.Context, limit int) ([]ContributionDTO, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	cycleID, err := u.resolveCycle(ctx, "")
	if err != nil {
		return nil, err
	}
	rows, err := u.contributions.ListRecentByCycle(ctx, cycleID, limit)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}
	members, err := u.members.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]ContributionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i], ledger.ResolveMemberName(members, rows[i].MemberID)))
	}
	return out, nil
}

func toDTO(c *contribution.Contribution, memberName string) ContributionDTO {
	return ContributionDTO{
		ContributionID: c.ContributionID,
		MemberID:       c.MemberID,
		MemberName:     memberName,
		CycleID:        c.CycleID,
		Amount:         c.Amount,
		PaymentDate:    c.PaymentDate,
		PaymentMethod:  c.PaymentMethod,
		Status:         string(c.Status),
		Description:    c.Description,
	}
}
