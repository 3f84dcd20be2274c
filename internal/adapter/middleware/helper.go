package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	headerRequestID = "Ax-Request-Id"
	headerRequestAt = "Ax-Request-At"

	// Allowed client/server clock skew for Ax-Request-At.
	maxClockSkew = 10 * time.Minute
)

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

func nowUTC() time.Time { return time.Now().UTC() }

// fingerprint binds a request id to the concrete path and body it was first used with.
func fingerprint(path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(path))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// validRequestID accepts a lowercase UUID (v1-v5) or 32 lowercase hex characters.
func validRequestID(id string) bool {
	return reUUID.MatchString(id) || reHex32.MatchString(id)
}

// parseRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339 with a zone.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing " + headerRequestAt)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	// RFC3339Nano also parses plain RFC3339
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New(headerRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
}

// requestHeaders validates the idempotency headers of r against now.
func requestHeaders(r *http.Request, now time.Time) (string, time.Time, error) {
	id := strings.TrimSpace(r.Header.Get(headerRequestID))
	if id == "" {
		return "", time.Time{}, errors.New("missing " + headerRequestID)
	}
	if !validRequestID(id) {
		return "", time.Time{}, errors.New("invalid " + headerRequestID + " format")
	}
	at, err := parseRequestAt(r.Header.Get(headerRequestAt))
	if err != nil {
		return "", time.Time{}, err
	}
	if at.Before(now.Add(-maxClockSkew)) || at.After(now.Add(maxClockSkew)) {
		return "", time.Time{}, errors.New(headerRequestAt + " too skewed")
	}
	return id, at, nil
}
