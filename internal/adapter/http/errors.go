package http

import (
	"errors"
	"net/http"

	"savings-ledger/internal/domain/cycle"
	"savings-ledger/internal/domain/ledger"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/logger"
	"savings-ledger/internal/usecase/contribution"

	"github.com/labstack/echo/v4"
)

type errorKind struct {
	target error
	status int
	code   string
}

var errorKinds = []errorKind{
	{ledger.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid_amount"},
	{ledger.ErrInvalidRate, http.StatusUnprocessableEntity, "invalid_rate"},
	{ledger.ErrInvalidSchedule, http.StatusUnprocessableEntity, "invalid_schedule"},
	{cycle.ErrInvalidPeriod, http.StatusUnprocessableEntity, "invalid_period"},
	{loan.ErrInvalidMethod, http.StatusUnprocessableEntity, "invalid_method"},
	{contribution.ErrInvalidStatus, http.StatusUnprocessableEntity, "invalid_status"},
	{member.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_member"},

	{ledger.ErrLoanNotActive, http.StatusConflict, "loan_not_active"},
	{ledger.ErrInconsistentState, http.StatusConflict, "inconsistent_state"},
	{loan.ErrConcurrentUpdate, http.StatusConflict, "concurrent_update"},
	{member.ErrEmailTaken, http.StatusConflict, "email_taken"},

	{member.ErrNotFound, http.StatusNotFound, "not_found"},
	{loan.ErrNotFound, http.StatusNotFound, "not_found"},
	{cycle.ErrNotFound, http.StatusNotFound, "not_found"},
	{cycle.ErrNoActiveCycle, http.StatusNotFound, "no_active_cycle"},

	{member.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{member.ErrInactive, http.StatusForbidden, "member_inactive"},
}

// writeError renders err as an ErrorResponse. Unknown errors are logged and
// reported as 500 without leaking their text.
func writeError(c echo.Context, err error) error {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return c.JSON(k.status, ErrorResponse{Error: k.target.Error(), Code: k.code})
		}
	}
	logger.Error().Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "internal"})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Code: "invalid_body"})
}

func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Code:    "validation_failed",
		Details: ToFieldErrors(err),
	})
}

// bindAndValidate binds the body and runs the validator, writing the 400/422
// response itself. ok is false when the handler should return early.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, badBody(c)
	}
	if err := c.Validate(req); err != nil {
		return false, invalid(c, err)
	}
	return true, nil
}
