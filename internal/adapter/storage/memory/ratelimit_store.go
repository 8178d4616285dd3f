package memory

import (
	"context"
	"sync"
	"time"

	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"
)

type windowCount struct {
	windowID int64
	count    int64
}

// RateLimitStore implements ports.RateLimitStore with in-process fixed windows.
type RateLimitStore struct {
	clock clock.Clock

	mu       sync.Mutex
	counters map[string]windowCount
}

var _ ports.RateLimitStore = (*RateLimitStore)(nil)

func NewRateLimitStore(clk clock.Clock) *RateLimitStore {
	return &RateLimitStore{clock: clk, counters: make(map[string]windowCount)}
}

func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	secs := int64(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	windowID := s.clock.Now().Unix() / secs

	s.mu.Lock()
	wc := s.counters[key]
	if wc.windowID != windowID {
		wc = windowCount{windowID: windowID}
	}
	wc.count++
	s.counters[key] = wc
	s.mu.Unlock()

	remaining := limit - wc.count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   wc.count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * secs,
	}, nil
}
