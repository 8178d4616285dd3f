package memory

import (
	"context"
	"sync"
	"time"

	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"
)

// SettlementGuard implements ports.SettlementGuard for a single process.
type SettlementGuard struct {
	clock clock.Clock

	mu   sync.Mutex
	held map[string]time.Time // invoice id -> lease expiry
}

var _ ports.SettlementGuard = (*SettlementGuard)(nil)

func NewSettlementGuard(clk clock.Clock) *SettlementGuard {
	return &SettlementGuard{clock: clk, held: make(map[string]time.Time)}
}

// Acquire takes the lease for invoiceID unless a live lease exists.
func (g *SettlementGuard) Acquire(ctx context.Context, invoiceID string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	if exp, ok := g.held[invoiceID]; ok && now.Before(exp) {
		return false, nil
	}
	g.held[invoiceID] = now.Add(ttl)
	return true, nil
}

func (g *SettlementGuard) Release(ctx context.Context, invoiceID string) error {
	g.mu.Lock()
	delete(g.held, invoiceID)
	g.mu.Unlock()
	return nil
}
