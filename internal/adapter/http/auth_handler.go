package http

import (
	"net/http"

	"savings-ledger/internal/adapter/middleware"
	"savings-ledger/internal/logger"
	"savings-ledger/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	members  *member.Usecase
	sessions *middleware.SessionStore
}

func NewAuthHandler(m *member.Usecase, s *middleware.SessionStore) *AuthHandler {
	return &AuthHandler{members: m, sessions: s}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token  string           `json:"token"`
	Member member.MemberDTO `json:"member"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()
	m, err := h.members.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	token, err := h.sessions.Create(ctx, m.MemberID)
	if err != nil {
		return writeError(c, err)
	}
	logger.Info().Str("member_id", m.MemberID).Msg("member logged in")
	return c.JSON(http.StatusOK, loginResp{Token: token, Member: *m})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Delete(c.Request().Context(), middleware.SessionToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
