package mysql

import (
	"context"

	cycleDomain "savings-ledger/internal/domain/cycle"

	"gorm.io/gorm"
)

type CycleRepository struct{ db *gorm.DB }

func NewCycleRepository(db *gorm.DB) *CycleRepository { return &CycleRepository{db: db} }

func (r *CycleRepository) Create(ctx context.Context, c *cycleDomain.SavingsCycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetActive returns the most recently started active cycle.
func (r *CycleRepository) GetActive(ctx context.Context) (*cycleDomain.SavingsCycle, error) {
	var out cycleDomain.SavingsCycle
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("start_date DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *CycleRepository) GetByCycleID(ctx context.Context, cycleID string) (*cycleDomain.SavingsCycle, error) {
	var out cycleDomain.SavingsCycle
	res := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID).First(&out)
	return &out, res.Error
}

func (r *CycleRepository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&cycleDomain.SavingsCycle{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
