package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"savings-ledger/internal/logger"
)

const dialBudget = 5 * time.Second

type Options struct {
	Addr     string
	Password string
	DB       int
}

// OpenRedis returns a client that has answered PING within dialBudget.
// Sessions and replay records live in this database.
func OpenRedis(ctx context.Context, o Options) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: o.Addr, Password: o.Password, DB: o.DB})

	pingCtx, cancel := context.WithTimeout(ctx, dialBudget)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	logger.Info().Str("addr", o.Addr).Int("db", o.DB).Msg("redis: connected")
	return rdb, nil
}
