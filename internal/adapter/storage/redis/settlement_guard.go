package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localpay-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// SettlementGuard implements ports.SettlementGuard using Redis SET NX, so
// several gateway instances sharing one ledger cannot settle an invoice twice
// at once.
type SettlementGuard struct {
	client goredis.UniversalClient
	prefix string
}

var _ ports.SettlementGuard = (*SettlementGuard)(nil)

func NewSettlementGuard(client goredis.UniversalClient) *SettlementGuard {
	return &SettlementGuard{
		client: client,
		prefix: "settling:",
	}
}

// Acquire returns false when the invoice is already being settled.
func (g *SettlementGuard) Acquire(ctx context.Context, invoiceID string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+invoiceID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis settlement guard acquire: %w", err)
	}
	return result == "OK", nil
}

func (g *SettlementGuard) Release(ctx context.Context, invoiceID string) error {
	if err := g.client.Del(ctx, g.prefix+invoiceID).Err(); err != nil {
		return fmt.Errorf("redis settlement guard release: %w", err)
	}
	return nil
}
