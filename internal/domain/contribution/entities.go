package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Table: contributions. Rows are immutable once written.
type Contribution struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ContributionID string          `gorm:"column:contribution_id;type:char(32);not null;uniqueIndex:ux_contributions_contribution_id" json:"contribution_id"`
	MemberID       string          `gorm:"column:member_id;type:char(32);not null;index" json:"member_id"`
	CycleID        string          `gorm:"column:cycle_id;type:char(32);not null;index:idx_contributions_cycle_status" json:"cycle_id"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PaymentDate    time.Time       `gorm:"column:payment_date;type:date;not null" json:"payment_date"`
	PaymentMethod  string          `gorm:"column:payment_method;size:32;not null" json:"payment_method"`
	Status         Status          `gorm:"column:status;size:16;not null;default:'completed';index:idx_contributions_cycle_status" json:"status"`
	Description    string          `gorm:"column:description;type:text" json:"description"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Contribution) TableName() string { return "contributions" }
