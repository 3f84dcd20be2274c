package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	// List returns members ordered by full name; activeOnly filters is_active = true.
	List(ctx context.Context, activeOnly bool) ([]Member, error)
	SetActive(ctx context.Context, memberID string, active bool) error
}
