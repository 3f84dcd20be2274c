package http

import (
	"net/http"

	domain "savings-ledger/internal/domain/loan"
	"savings-ledger/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type issueLoanReq struct {
	BorrowerID   string          `json:"borrower_id" validate:"required,hex32"`
	Principal    decimal.Decimal `json:"principal" validate:"dec2"`
	InterestRate decimal.Decimal `json:"interest_rate" validate:"dec2"`
	IssueDate    string          `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate      string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Purpose      string          `json:"purpose" validate:"max=500"`
}

type repayReq struct {
	Amount        decimal.Decimal `json:"amount" validate:"dec2"`
	PaymentDate   string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string          `json:"payment_method"`
}

func (h *LoanHandler) Issue(c echo.Context) error {
	var req issueLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Issue(c.Request().Context(), loan.IssueLoanInput{
		BorrowerID:   req.BorrowerID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		IssueDate:    parseDay(req.IssueDate),
		DueDate:      parseDay(req.DueDate),
		Purpose:      req.Purpose,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List accepts ?status=active|paid; no status lists every loan.
func (h *LoanHandler) List(c echo.Context) error {
	status := domain.Status(c.QueryParam("status"))
	switch status {
	case "", domain.StatusActive, domain.StatusPaid:
	default:
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    "validation_failed",
			Details: []FieldError{{Field: "status", Message: "must be one of: active paid"}},
		})
	}
	out, err := h.uc.List(c.Request().Context(), status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Repay(c echo.Context) error {
	var req repayReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Repay(c.Request().Context(), c.Param("loan_id"), loan.RepayInput{
		Amount:        req.Amount,
		PaymentDate:   parseDay(req.PaymentDate),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *LoanHandler) ListRepayments(c echo.Context) error {
	out, err := h.uc.ListRepayments(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
