package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// reservationTTL bounds how long a crashed request can block its retry.
const reservationTTL = 60 * time.Second

// replayRecord is what Redis holds per idempotency key. Pending records are
// reservations; completed records carry the response to replay.
type replayRecord struct {
	Pending     bool      `json:"pending"`
	Fingerprint string    `json:"fingerprint"`
	Status      int       `json:"status,omitempty"`
	Body        []byte    `json:"body,omitempty"`
	RequestAtMS int64     `json:"request_at_ms"`
	StoredAt    time.Time `json:"stored_at"`
}

// ReplayStore keeps idempotency records in Redis under
// replay:<member>:<method> <route>:<request id>.
type ReplayStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReplayStore(rdb *redis.Client, ttl time.Duration) *ReplayStore {
	return &ReplayStore{rdb: rdb, ttl: ttl}
}

func replayKey(memberID, method, route, requestID string) string {
	return "replay:" + memberID + ":" + strings.ToUpper(method) + " " + route + ":" + requestID
}

// Reserve claims key for a new request. When the key is taken it returns the
// existing record and false.
func (s *ReplayStore) Reserve(ctx context.Context, key string, rec replayRecord) (bool, *replayRecord, error) {
	rec.Pending = true
	payload, err := json.Marshal(rec)
	if err != nil {
		return false, nil, err
	}
	ok, err := s.rdb.SetNX(ctx, key, payload, reservationTTL).Result()
	if err != nil || ok {
		return ok, nil, err
	}
	prior, err := s.load(ctx, key)
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; treat as still busy
		return false, &replayRecord{Pending: true, Fingerprint: rec.Fingerprint}, nil
	}
	return false, prior, err
}

// Complete replaces the reservation with the final response for the store TTL.
func (s *ReplayStore) Complete(ctx context.Context, key string, rec replayRecord) error {
	rec.Pending = false
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, s.ttl).Err()
}

// Release drops a reservation so the same request id can be retried.
func (s *ReplayStore) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *ReplayStore) load(ctx context.Context, key string) (*replayRecord, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var rec replayRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
