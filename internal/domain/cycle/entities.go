package cycle

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("savings cycle not found")
	ErrNoActiveCycle = errors.New("no active savings cycle")
	ErrInvalidPeriod = errors.New("cycle end date must not be before start date")
)

// Table: savings_cycles. At most one row has is_active = true; the repository
// deactivates the previous cycle when a new active one is created.
type SavingsCycle struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CycleID       string          `gorm:"column:cycle_id;type:char(32);not null;uniqueIndex:ux_cycles_cycle_id" json:"cycle_id"`
	StartDate     time.Time       `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate       time.Time       `gorm:"column:end_date;type:date;not null" json:"end_date"`
	MonthlyAmount decimal.Decimal `gorm:"column:monthly_amount;type:decimal(18,2);not null" json:"monthly_amount"`
	IsActive      bool            `gorm:"column:is_active;not null;default:false;index" json:"is_active"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SavingsCycle) TableName() string { return "savings_cycles" }
