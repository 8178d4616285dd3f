package middleware

import (
	"fmt"
	"strconv"
	"time"

	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"
	"localpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Route groups with their own counters.
const (
	GroupRead       = "read"
	GroupCart       = "cart"
	GroupInvoices   = "invoices"
	GroupSettlement = "settlement"
	GroupChain      = "chain"
)

// DefaultRateLimitRules returns the per-group limits.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupRead:       {Limit: 120, Window: time.Minute},
		GroupCart:       {Limit: 60, Window: time.Minute},
		GroupInvoices:   {Limit: 30, Window: time.Minute},
		GroupSettlement: {Limit: 10, Window: time.Minute},
		GroupChain:      {Limit: 20, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group,
// keyed by client IP. Store errors let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, clk clock.Clock, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", c.ClientIP(), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - clk.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
