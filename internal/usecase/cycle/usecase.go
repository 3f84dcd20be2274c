package cycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/uow"
	"savings-ledger/internal/logger"
	"savings-ledger/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateCycleInput struct {
	StartDate     time.Time
	EndDate       time.Time
	MonthlyAmount decimal.Decimal
	Activate      bool
}

type Usecase struct {
	repo cycle.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r cycle.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Create stores a cycle. An activated cycle replaces the current active one in
// the same transaction.
func (u *Usecase) Create(ctx context.Context, in CreateCycleInput) (*cycle.SavingsCycle, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, cycle.ErrInvalidPeriod
	}
	if !in.MonthlyAmount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	c := &cycle.SavingsCycle{
		CycleID:       id.NewID32(),
		StartDate:     in.StartDate.UTC(),
		EndDate:       in.EndDate.UTC(),
		MonthlyAmount: in.MonthlyAmount,
		IsActive:      in.Activate,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if in.Activate {
			if err := r.Cycles.DeactivateAll(ctx); err != nil {
				return err
			}
		}
		return r.Cycles.Create(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("create cycle: %w", err)
	}
	logger.Info().Str("cycle_id", c.CycleID).Bool("active", c.IsActive).Msg("savings cycle created")
	return c, nil
}

func (u *Usecase) GetActive(ctx context.Context) (*cycle.SavingsCycle, error) {
	c, err := u.repo.GetActive(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cycle.ErrNoActiveCycle
	}
	if err != nil {
		return nil, fmt.Errorf("get active cycle: %w", err)
	}
	return c, nil
}
