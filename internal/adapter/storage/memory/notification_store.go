// Package memory holds in-process drivers used when redis is not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"
)

const maxToasts = 100

type storedResult struct {
	payload   domain.SettlementPayload
	expiresAt time.Time
}

// NotificationStore implements ports.NotificationStore in memory. Expired
// entries are dropped lazily on access.
type NotificationStore struct {
	clock clock.Clock

	mu      sync.Mutex
	toasts  []domain.Notification
	results map[string]storedResult
}

var _ ports.NotificationStore = (*NotificationStore)(nil)

func NewNotificationStore(clk clock.Clock) *NotificationStore {
	return &NotificationStore{clock: clk, results: make(map[string]storedResult)}
}

func (s *NotificationStore) Push(ctx context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(s.clock.Now())
	s.toasts = append(s.toasts, n)
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	return nil
}

func (s *NotificationStore) Recent(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	out := make([]domain.Notification, len(s.toasts))
	copy(out, s.toasts)
	return out, nil
}

func (s *NotificationStore) PutResult(ctx context.Context, payload domain.SettlementPayload, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[payload.InvoiceID] = storedResult{payload: payload, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

func (s *NotificationStore) Result(ctx context.Context, invoiceID string) (domain.SettlementPayload, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.results[invoiceID]
	if !ok {
		return domain.SettlementPayload{}, false, nil
	}
	if !s.clock.Now().Before(r.expiresAt) {
		delete(s.results, invoiceID)
		return domain.SettlementPayload{}, false, nil
	}
	return r.payload, true, nil
}

func (s *NotificationStore) pruneLocked(now time.Time) {
	live := s.toasts[:0]
	for _, n := range s.toasts {
		if !n.Expired(now) {
			live = append(live, n)
		}
	}
	s.toasts = live
}
