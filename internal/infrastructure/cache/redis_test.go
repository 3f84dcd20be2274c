package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestOpenRedis_SelectsDatabase(t *testing.T) {
	srv := miniredis.RunT(t)

	rdb, err := OpenRedis(context.Background(), Options{Addr: srv.Addr(), DB: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rdb.Set(ctx, "session:abc", "m-1", time.Minute).Err())

	require.True(t, srv.DB(2).Exists("session:abc"))
	require.False(t, srv.DB(0).Exists("session:abc"))
}

func TestOpenRedis_Password(t *testing.T) {
	srv := miniredis.RunT(t)
	srv.RequireAuth("s3cret")

	_, err := OpenRedis(context.Background(), Options{Addr: srv.Addr()})
	require.Error(t, err)

	rdb, err := OpenRedis(context.Background(), Options{Addr: srv.Addr(), Password: "s3cret"})
	require.NoError(t, err)
	_ = rdb.Close()
}

func TestOpenRedis_Unreachable(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	cases := map[string]struct {
		ctx  context.Context
		addr string
	}{
		"cancelled context": {cancelled, miniredis.RunT(t).Addr()},
		"unknown host":      {context.Background(), "not-a-real-host:6379"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := OpenRedis(tc.ctx, Options{Addr: tc.addr})
			require.Error(t, err)
		})
	}
}
