package mysql

import (
	"context"

	contributionDomain "savings-ledger/internal/domain/contribution"

	"gorm.io/gorm"
)

type ContributionRepository struct{ db *gorm.DB }

func NewContributionRepository(db *gorm.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contributionDomain.Contribution) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContributionRepository) ListByCycle(ctx context.Context, cycleID string, status contributionDomain.Status) ([]contributionDomain.Contribution, error) {
	var out []contributionDomain.Contribution
	q := r.db.WithContext(ctx).Where("cycle_id = ?", cycleID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Order("payment_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ContributionRepository) ListRecentByCycle(ctx context.Context, cycleID string, limit int) ([]contributionDomain.Contribution, error) {
	var out []contributionDomain.Contribution
	res := r.db.WithContext(ctx).
		Where("cycle_id = ?", cycleID).
		Order("payment_date DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
