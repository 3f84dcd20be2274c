package middleware

import (
	"context"
	"errors"
	"time"

	"savings-ledger/pkg/id"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionStore keeps bearer tokens in Redis: session:<token> → member_id.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

func (s *SessionStore) Create(ctx context.Context, memberID string) (string, error) {
	token := id.NewToken()
	if err := s.rdb.Set(ctx, sessionKey(token), memberID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the member id and slides the expiry forward.
func (s *SessionStore) Resolve(ctx context.Context, token string) (string, error) {
	memberID, err := s.rdb.GetEx(ctx, sessionKey(token), s.ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return memberID, err
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, sessionKey(token)).Err()
}
