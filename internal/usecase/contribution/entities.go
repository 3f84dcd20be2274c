package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordInput struct {
	MemberID      string
	CycleID       string // empty means the active cycle
	Amount        decimal.Decimal
	PaymentDate   time.Time // zero means today
	PaymentMethod string
	Status        string // empty means completed
	Description   string
}

type ContributionDTO struct {
	ContributionID string          `json:"contribution_id"`
	MemberID       string          `json:"member_id"`
	MemberName     string          `json:"member_name"`
	CycleID        string          `json:"cycle_id"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentDate    time.Time       `json:"payment_date"`
	PaymentMethod  string          `json:"payment_method"`
	Status         string          `json:"status"`
	Description    string          `json:"description"`
}
