package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/testutil/membermock"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func finder(ms ...member.Member) *membermock.Repo {
	return &membermock.Repo{
		GetByMemberIDFn: func(_ context.Context, id string) (*member.Member, error) {
			for i := range ms {
				if ms[i].MemberID == id {
					return &ms[i], nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func authEcho(store *SessionStore, members MemberFinder) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	g := e.Group("", RequireSession(store, members))
	g.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"member_id": MemberID(c), "is_admin": IsAdmin(c), "token": SessionToken(c)})
	})
	g.POST("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAdmin)
	return e
}

func withToken(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func TestSessionStore_CreateResolveDelete(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	store := NewSessionStore(rdb, time.Hour)
	ctx := context.Background()

	tok, err := store.Create(ctx, "m1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ttl := mr.TTL(sessionKey(tok)); ttl != time.Hour {
		t.Fatalf("session TTL = %v, want 1h", ttl)
	}
	got, err := store.Resolve(ctx, tok)
	if err != nil || got != "m1" {
		t.Fatalf("Resolve = %q, %v", got, err)
	}
	if err := store.Delete(ctx, tok); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Resolve(ctx, tok); err != ErrSessionNotFound {
		t.Fatalf("after delete want ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	store := NewSessionStore(rdb, time.Minute)

	tok, _ := store.Create(context.Background(), "m1")
	mr.FastForward(2 * time.Minute)
	if _, err := store.Resolve(context.Background(), tok); err != ErrSessionNotFound {
		t.Fatalf("expired session: want ErrSessionNotFound, got %v", err)
	}
}

func TestRequireSession(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	store := NewSessionStore(rdb, time.Hour)
	ctx := context.Background()

	admin := member.Member{MemberID: "admin", IsActive: true, IsAdmin: true}
	plain := member.Member{MemberID: "plain", IsActive: true}
	gone := member.Member{MemberID: "gone", IsActive: false}
	e := authEcho(store, finder(admin, plain, gone))

	adminTok, _ := store.Create(ctx, admin.MemberID)
	plainTok, _ := store.Create(ctx, plain.MemberID)
	goneTok, _ := store.Create(ctx, gone.MemberID)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"unknown token", http.MethodGet, "/me", "nope", http.StatusUnauthorized},
		{"inactive member", http.MethodGet, "/me", goneTok, http.StatusUnauthorized},
		{"member reads", http.MethodGet, "/me", plainTok, http.StatusOK},
		{"member cannot admin", http.MethodPost, "/admin", plainTok, http.StatusForbidden},
		{"admin can admin", http.MethodPost, "/admin", adminTok, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, withToken(tc.method, tc.path, tc.token))
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.want, rec.Body.String())
			}
		})
	}
}

func TestRequireSession_MemberStoreDown(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	store := NewSessionStore(rdb, time.Hour)

	down := &membermock.Repo{
		GetByMemberIDFn: func(context.Context, string) (*member.Member, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	}
	e := authEcho(store, down)
	tok, err := store.Create(context.Background(), "m-1")
	if err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, withToken(http.MethodGet, "/me", tok))
	if rec.Code != http.StatusServiceUnavailable || !strings.Contains(rec.Body.String(), "member_store_unavailable") {
		t.Fatalf("status = %d body=%s, want 503", rec.Code, rec.Body.String())
	}

	gone := &membermock.Repo{
		GetByMemberIDFn: func(context.Context, string) (*member.Member, error) { return nil, member.ErrNotFound },
	}
	rec = httptest.NewRecorder()
	authEcho(store, gone).ServeHTTP(rec, withToken(http.MethodGet, "/me", tok))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing member: status = %d, want 401", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"":            "",
		"Bearer":      "",
	}
	for h, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, h)
		if got := bearerToken(req); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", h, got, want)
		}
	}
}
