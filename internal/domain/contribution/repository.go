package contribution

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	// ListByCycle returns the cycle's contributions newest first; status "" means any.
	ListByCycle(ctx context.Context, cycleID string, status Status) ([]Contribution, error)
	ListRecentByCycle(ctx context.Context, cycleID string, limit int) ([]Contribution, error)
}
