package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"savings-ledger/internal/app"
	"savings-ledger/internal/config"
	"savings-ledger/internal/infrastructure/cache"
	"savings-ledger/internal/infrastructure/db"
	"savings-ledger/internal/logger"
)

func newServeCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg())
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	gdb, err := db.OpenGorm(cfg)
	if err != nil {
		return err
	}
	if cfg.DBDriver == config.DriverSQLite {
		// local stores are created on first start
		if err := db.Migrate(gdb); err != nil {
			return err
		}
	}
	rdb, err := cache.OpenRedis(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	a := app.New(gdb, rdb, app.Options{
		SessionTTL:     cfg.SessionTTL(),
		IdempotencyTTL: cfg.IdempotencyTTL(),
	})
	e := a.Echo()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		logger.Info().Str("addr", addr).Msg("listening")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
