package http

import (
	"net/http"

	"savings-ledger/internal/usecase/cycle"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CycleHandler struct{ uc *cycle.Usecase }

func NewCycleHandler(uc *cycle.Usecase) *CycleHandler { return &CycleHandler{uc: uc} }

type createCycleReq struct {
	StartDate     string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount" validate:"dec2"`
	Activate      *bool           `json:"activate"`
}

func (h *CycleHandler) Create(c echo.Context) error {
	var req createCycleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	activate := true
	if req.Activate != nil {
		activate = *req.Activate
	}
	out, err := h.uc.Create(c.Request().Context(), cycle.CreateCycleInput{
		StartDate:     parseDay(req.StartDate),
		EndDate:       parseDay(req.EndDate),
		MonthlyAmount: req.MonthlyAmount,
		Activate:      activate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CycleHandler) Active(c echo.Context) error {
	out, err := h.uc.GetActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
