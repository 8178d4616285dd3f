package redis

import (
	"context"
	"fmt"
	"time"

	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"

	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStore implements ports.RateLimitStore with fixed-window counters.
type RateLimitStore struct {
	client goredis.UniversalClient
	clock  clock.Clock
	prefix string
}

var _ ports.RateLimitStore = (*RateLimitStore)(nil)

func NewRateLimitStore(client goredis.UniversalClient, clk clock.Clock) *RateLimitStore {
	return &RateLimitStore{
		client: client,
		clock:  clk,
		prefix: "ratelimit:",
	}
}

// Allow increments the counter for key in the current window. The window id
// is unix time divided by the window length.
func (s *RateLimitStore) Allow(ctx context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	secs := int64(window / time.Second)
	if secs < 1 {
		secs = 1
	}
	windowID := s.clock.Now().Unix() / secs
	redisKey := fmt.Sprintf("%s%s:%d", s.prefix, key, windowID)

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis rate limit incr: %w", err)
	}
	// First hit opens the window.
	if count == 1 {
		s.client.Expire(ctx, redisKey, window+time.Second)
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * secs,
	}, nil
}
