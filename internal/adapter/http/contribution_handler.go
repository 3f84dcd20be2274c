package http

import (
	"net/http"

	"savings-ledger/internal/usecase/contribution"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ContributionHandler struct{ uc *contribution.Usecase }

func NewContributionHandler(uc *contribution.Usecase) *ContributionHandler {
	return &ContributionHandler{uc: uc}
}

type recordContributionReq struct {
	MemberID      string          `json:"member_id" validate:"required,hex32"`
	CycleID       string          `json:"cycle_id" validate:"omitempty,hex32"`
	Amount        decimal.Decimal `json:"amount" validate:"dec2"`
	PaymentDate   string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	Description   string          `json:"description" validate:"max=500"`
}

func (h *ContributionHandler) Record(c echo.Context) error {
	var req recordContributionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Record(c.Request().Context(), contribution.RecordInput{
		MemberID:      req.MemberID,
		CycleID:       req.CycleID,
		Amount:        req.Amount,
		PaymentDate:   parseDay(req.PaymentDate),
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		Description:   req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Recent lists the active cycle's latest contributions; ?limit= defaults to 10.
func (h *ContributionHandler) Recent(c echo.Context) error {
	limit := queryInt(c.QueryParam("limit"), contribution.DefaultRecentLimit)
	out, err := h.uc.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
