package postgres

import "context"

// HealthCheck implements ports.HealthChecker for the sales mirror database.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
