package http

import (
	"savings-ledger/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Router struct {
	Health        *Handler
	Auth          *AuthHandler
	Members       *MemberHandler
	Cycles        *CycleHandler
	Contributions *ContributionHandler
	Loans         *LoanHandler
	Reports       *ReportHandler

	Session     echo.MiddlewareFunc
	Idempotency echo.MiddlewareFunc
}

// Register mounts every route. Reads need a session; writes additionally need
// an admin and idempotency headers. Logout only needs the session.
func (r *Router) Register(e *echo.Echo) {
	e.GET("/health", r.Health.Health)
	e.POST("/auth/login", r.Auth.Login)

	authed := e.Group("", r.Session)
	authed.POST("/auth/logout", r.Auth.Logout)

	write := []echo.MiddlewareFunc{middleware.RequireAdmin, r.Idempotency}

	authed.GET("/members", r.Members.List)
	authed.GET("/members/:member_id", r.Members.Get)
	authed.POST("/members", r.Members.Register, write...)
	authed.PATCH("/members/:member_id/active", r.Members.SetActive, write...)

	authed.GET("/cycles/active", r.Cycles.Active)
	authed.POST("/cycles", r.Cycles.Create, write...)

	authed.GET("/contributions", r.Contributions.Recent)
	authed.POST("/contributions", r.Contributions.Record, write...)

	authed.GET("/loans", r.Loans.List)
	authed.GET("/loans/:loan_id", r.Loans.Get)
	authed.POST("/loans", r.Loans.Issue, write...)
	authed.POST("/loans/:loan_id/repayments", r.Loans.Repay, write...)
	authed.GET("/loans/:loan_id/repayments", r.Loans.ListRepayments)

	authed.GET("/reports/summary", r.Reports.Summary)
	authed.GET("/reports/member-totals", r.Reports.MemberTotals)
	authed.GET("/reports/contribution-trend", r.Reports.ContributionTrend)
	authed.GET("/reports/loan-status", r.Reports.LoanStatus)
}
