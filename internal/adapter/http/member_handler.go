package http

import (
	"net/http"
	"strconv"

	"savings-ledger/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type registerMemberReq struct {
	FullName    string `json:"full_name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,max=32"`
	Address     string `json:"address" validate:"max=1000"`
	JoinedDate  string `json:"joined_date" validate:"omitempty,datetime=2006-01-02"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	IsAdmin     bool   `json:"is_admin"`
}

type setActiveReq struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *MemberHandler) Register(c echo.Context) error {
	var req registerMemberReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Register(c.Request().Context(), member.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		JoinedDate:  parseDay(req.JoinedDate),
		Password:    req.Password,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// List returns every member; ?active=true keeps active members only.
func (h *MemberHandler) List(c echo.Context) error {
	activeOnly, _ := strconv.ParseBool(c.QueryParam("active"))
	out, err := h.uc.List(c.Request().Context(), activeOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MemberHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) SetActive(c echo.Context) error {
	var req setActiveReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()
	memberID := c.Param("member_id")
	if err := h.uc.SetActive(ctx, memberID, *req.IsActive); err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Get(ctx, memberID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
