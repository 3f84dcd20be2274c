package member

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"savings-ledger/internal/domain/member"
	"savings-ledger/internal/logger"
	"savings-ledger/pkg/id"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	repo member.Repository
	cost int
	now  func() time.Time
}

func NewUsecase(r member.Repository) *Usecase {
	return &Usecase{repo: r, cost: bcrypt.DefaultCost, now: time.Now}
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func (u *Usecase) WithHashCost(cost int) *Usecase {
	u.cost = cost
	return u
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*MemberDTO, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.FullName)
	if name == "" || email == "" {
		return nil, member.ErrInvalidInput
	}

	_, err := u.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, member.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup member by email: %w", err)
	}

	joined := in.JoinedDate
	if joined.IsZero() {
		joined = u.now()
	}
	m := &member.Member{
		MemberID:    id.NewID32(),
		FullName:    name,
		Email:       email,
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		JoinedDate:  truncateDay(joined),
		IsActive:    true,
		IsAdmin:     in.IsAdmin,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		m.PasswordHash = string(hash)
	}

	if err := u.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	logger.Info().Str("member_id", m.MemberID).Bool("is_admin", m.IsAdmin).Msg("member registered")
	dto := toDTO(m)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, memberID string) (*MemberDTO, error) {
	m, err := u.repo.GetByMemberID(ctx, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, member.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	dto := toDTO(m)
	return &dto, nil
}

func (u *Usecase) List(ctx context.Context, activeOnly bool) ([]MemberDTO, error) {
	ms, err := u.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	out := make([]MemberDTO, 0, len(ms))
	for i := range ms {
		out = append(out, toDTO(&ms[i]))
	}
	return out, nil
}

// SetActive replaces deletion; deactivated members keep their history.
func (u *Usecase) SetActive(ctx context.Context, memberID string, active bool) error {
	err := u.repo.SetActive(ctx, memberID, active)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return member.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set member active: %w", err)
	}
	logger.Info().Str("member_id", memberID).Bool("is_active", active).Msg("member activity changed")
	return nil
}

// Authenticate checks credentials. Unknown email and wrong password return the
// same error.
func (u *Usecase) Authenticate(ctx context.Context, email, password string) (*MemberDTO, error) {
	m, err := u.repo.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, member.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup member by email: %w", err)
	}
	if m.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, member.ErrInvalidCredentials
	}
	if !m.IsActive {
		return nil, member.ErrInactive
	}
	dto := toDTO(m)
	return &dto, nil
}

// EnsureAdmin creates an admin member with the given credentials unless the email
// is already registered. Reports whether a member was created.
func (u *Usecase) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := u.Register(ctx, RegisterInput{
		FullName: "Administrator",
		Email:    email,
		Password: password,
		IsAdmin:  true,
	})
	if errors.Is(err, member.ErrEmailTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
