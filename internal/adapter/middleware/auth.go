package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	ctxMemberID = "member_id"
	ctxIsAdmin  = "is_admin"
	ctxToken    = "session_token"
)

// MemberFinder loads the member behind a session; member.Repository satisfies it.
type MemberFinder interface {
	GetByMemberID(ctx context.Context, memberID string) (*member.Member, error)
}

func deny(c echo.Context, status int, code, msg string) error {
	return c.JSON(status, map[string]string{"error": msg, "code": code})
}

func bearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get(echo.HeaderAuthorization))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// RequireSession resolves the bearer token and rejects unknown, expired or
// inactive sessions with 401.
func RequireSession(store *SessionStore, members MemberFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request())
			if token == "" {
				return deny(c, http.StatusUnauthorized, "unauthenticated", "missing bearer token")
			}
			ctx := c.Request().Context()
			memberID, err := store.Resolve(ctx, token)
			if errors.Is(err, ErrSessionNotFound) {
				return deny(c, http.StatusUnauthorized, "unauthenticated", "session expired")
			}
			if err != nil {
				logger.Error().Err(err).Msg("session lookup failed")
				return deny(c, http.StatusServiceUnavailable, "session_store_unavailable", "session store unavailable")
			}
			m, err := members.GetByMemberID(ctx, memberID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, member.ErrNotFound):
				return deny(c, http.StatusUnauthorized, "unauthenticated", "session member is not active")
			case err != nil:
				logger.Error().Err(err).Str("member_id", memberID).Msg("session member lookup failed")
				return deny(c, http.StatusServiceUnavailable, "member_store_unavailable", "member store unavailable")
			case !m.IsActive:
				return deny(c, http.StatusUnauthorized, "unauthenticated", "session member is not active")
			}
			c.Set(ctxMemberID, m.MemberID)
			c.Set(ctxIsAdmin, m.IsAdmin)
			c.Set(ctxToken, token)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if MemberID(c) == "" {
			return deny(c, http.StatusUnauthorized, "unauthenticated", "not logged in")
		}
		if !IsAdmin(c) {
			return deny(c, http.StatusForbidden, "forbidden", "admin access required")
		}
		return next(c)
	}
}

func MemberID(c echo.Context) string {
	v, _ := c.Get(ctxMemberID).(string)
	return v
}

func IsAdmin(c echo.Context) bool {
	v, _ := c.Get(ctxIsAdmin).(bool)
	return v
}

func SessionToken(c echo.Context) string {
	v, _ := c.Get(ctxToken).(string)
	return v
}
