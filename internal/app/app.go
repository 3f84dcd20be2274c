// Package app wires repositories, use cases and HTTP handlers together.
package app

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	httpadp "savings-ledger/internal/adapter/http"
	"savings-ledger/internal/adapter/middleware"
	"savings-ledger/internal/adapter/repository/mysql"
	"savings-ledger/internal/usecase/contribution"
	"savings-ledger/internal/usecase/cycle"
	"savings-ledger/internal/usecase/loan"
	"savings-ledger/internal/usecase/member"
	"savings-ledger/internal/usecase/report"
)

type Options struct {
	SessionTTL     time.Duration
	IdempotencyTTL time.Duration
	// HashCost overrides the bcrypt cost; zero keeps the default.
	HashCost int
}

type App struct {
	Members       *member.Usecase
	Cycles        *cycle.Usecase
	Contributions *contribution.Usecase
	Loans         *loan.Usecase
	Reports       *report.Usecase
	Sessions      *middleware.SessionStore

	router *httpadp.Router
}

func New(gdb *gorm.DB, rdb *redis.Client, opts Options) *App {
	memberRepo := mysql.NewMemberRepository(gdb)
	cycleRepo := mysql.NewCycleRepository(gdb)
	contribRepo := mysql.NewContributionRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	a := &App{
		Members:       member.NewUsecase(memberRepo),
		Cycles:        cycle.NewUsecase(cycleRepo, tx),
		Contributions: contribution.NewUsecase(contribRepo, cycleRepo, memberRepo),
		Loans:         loan.NewUsecase(loanRepo, repaymentRepo, memberRepo, tx),
		Reports:       report.NewUsecase(memberRepo, cycleRepo, contribRepo, loanRepo, repaymentRepo),
		Sessions:      middleware.NewSessionStore(rdb, opts.SessionTTL),
	}
	if opts.HashCost > 0 {
		a.Members.WithHashCost(opts.HashCost)
	}

	health := httpadp.NewHandler(
		httpadp.Check{Name: "database", Ping: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}},
		httpadp.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)

	a.router = &httpadp.Router{
		Health:        health,
		Auth:          httpadp.NewAuthHandler(a.Members, a.Sessions),
		Members:       httpadp.NewMemberHandler(a.Members),
		Cycles:        httpadp.NewCycleHandler(a.Cycles),
		Contributions: httpadp.NewContributionHandler(a.Contributions),
		Loans:         httpadp.NewLoanHandler(a.Loans),
		Reports:       httpadp.NewReportHandler(a.Reports),
		Session:       middleware.RequireSession(a.Sessions, memberRepo),
		Idempotency:   middleware.Idempotency(middleware.NewReplayStore(rdb, opts.IdempotencyTTL)),
	}
	return a
}

// Echo builds the HTTP server with recovery, request logging and every route.
func (a *App) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Recover(), middleware.RequestLogger())
	a.router.Register(e)
	return e
}
