package cycle

import "context"

type Repository interface {
	Create(ctx context.Context, c *SavingsCycle) error
	GetActive(ctx context.Context) (*SavingsCycle, error)
	GetByCycleID(ctx context.Context, cycleID string) (*SavingsCycle, error)
	// DeactivateAll clears is_active on every cycle.
	DeactivateAll(ctx context.Context) error
}
