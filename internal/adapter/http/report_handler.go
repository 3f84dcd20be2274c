package http

import (
	"net/http"

	"savings-ledger/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) MemberTotals(c echo.Context) error {
	out, err := h.uc.MemberTotals(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ContributionTrend(c echo.Context) error {
	out, err := h.uc.ContributionTrend(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) LoanStatus(c echo.Context) error {
	out, err := h.uc.LoanStatus(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
