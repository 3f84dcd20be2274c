package mysql

import (
	"context"

	memberDomain "savings-ledger/internal/domain/member"

	"gorm.io/gorm"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) GetByMemberID(ctx context.Context, memberID string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) List(ctx context.Context, activeOnly bool) ([]memberDomain.Member, error) {
	var out []memberDomain.Member
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	res := q.Order("full_name ASC, id ASC").Find(&out)
	return out, res.Error
}

// SetActive returns gorm.ErrRecordNotFound when no member matches.
func (r *MemberRepository) SetActive(ctx context.Context, memberID string, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Where("member_id = ?", memberID).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
