package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"savings-ledger/internal/logger"

	"github.com/labstack/echo/v4"
)

// captureWriter tees the response so it can be stored for replay.
type captureWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency makes mutating requests safe to retry. Each request carries
// Ax-Request-Id and Ax-Request-At; the first response for a (member, route,
// request id) is stored and replayed to retries with the same path and body.
// Server errors are not stored, so a failed write can be retried with the same id.
// Must run after RequireSession.
func Idempotency(store *ReplayStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			requestID, requestAt, err := requestHeaders(req, nowUTC())
			if err != nil {
				return deny(c, http.StatusBadRequest, "invalid_idempotency_headers", err.Error())
			}
			memberID := MemberID(c)
			if memberID == "" {
				return deny(c, http.StatusUnauthorized, "unauthenticated", "not logged in")
			}

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return deny(c, http.StatusBadRequest, "invalid_body", "unreadable body")
			}
			req.Body = io.NopCloser(bytes.NewReader(body))

			key := replayKey(memberID, req.Method, c.Path(), requestID)
			rec := replayRecord{
				Fingerprint: fingerprint(req.URL.Path, body),
				RequestAtMS: requestAt.UnixMilli(),
				StoredAt:    nowUTC(),
			}

			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			reserved, prior, err := store.Reserve(ctx, key, rec)
			cancel()
			if err != nil {
				logger.Error().Err(err).Str("key", key).Msg("idempotency reservation failed")
				return deny(c, http.StatusServiceUnavailable, "idempotency_store_unavailable", "idempotency store unavailable")
			}
			if !reserved {
				switch {
				case prior.Fingerprint != rec.Fingerprint:
					return deny(c, http.StatusConflict, "idempotency_key_reused", headerRequestID+" reused with a different request")
				case prior.Pending:
					return deny(c, http.StatusConflict, "request_in_progress", "request is already in progress")
				}
				logger.Debug().Str("key", key).Int("status", prior.Status).Msg("idempotent replay")
				return c.Blob(prior.Status, echo.MIMEApplicationJSON, prior.Body)
			}

			w := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = w
			if err := next(c); err != nil {
				c.Error(err)
			}

			// the request context may already be cancelled here
			bg, cancelBg := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancelBg()
			if w.status >= http.StatusInternalServerError {
				if err := store.Release(bg, key); err != nil {
					logger.Warn().Err(err).Str("key", key).Msg("idempotency reservation not released")
				}
				return nil
			}
			rec.Status = w.status
			rec.Body = w.buf.Bytes()
			if err := store.Complete(bg, key, rec); err != nil {
				logger.Warn().Err(err).Str("key", key).Msg("idempotency result not stored")
			}
			return nil
		}
	}
}
