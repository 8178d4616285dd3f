package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func toast(id string, created time.Time, ttl time.Duration) domain.Notification {
	return domain.Notification{ID: id, Level: domain.NotificationInfo, Message: id, CreatedAt: created, ExpiresAt: created.Add(ttl)}
}

func TestNotificationStore_Expiry(t *testing.T) {
	clk := clock.NewFake(start)
	s := NewNotificationStore(clk)
	ctx := context.Background()

	require.NoError(t, s.Push(ctx, toast("a", start, 3*time.Second)))
	clk.Advance(time.Second)
	require.NoError(t, s.Push(ctx, toast("b", clk.Now(), 3*time.Second)))

	list, err := s.Recent(ctx, clk.Now())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)

	list, err = s.Recent(ctx, start.Add(3*time.Second))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)

	list, err = s.Recent(ctx, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNotificationStore_Cap(t *testing.T) {
	clk := clock.NewFake(start)
	s := NewNotificationStore(clk)
	for i := 0; i < maxToasts+5; i++ {
		require.NoError(t, s.Push(context.Background(), toast(fmt.Sprint(i), start, time.Minute)))
	}
	list, err := s.Recent(context.Background(), start)
	require.NoError(t, err)
	assert.Len(t, list, maxToasts)
	assert.Equal(t, "5", list[0].ID)
}

func TestNotificationStore_Results(t *testing.T) {
	clk := clock.NewFake(start)
	s := NewNotificationStore(clk)
	ctx := context.Background()

	_, ok, err := s.Result(ctx, "INV-1")
	require.NoError(t, err)
	assert.False(t, ok)

	p := domain.SettlementPayload{InvoiceID: "INV-1", Status: domain.InvoiceStatusPaid, Proof: "abc123"}
	require.NoError(t, s.PutResult(ctx, p, 10*time.Minute))

	got, ok, err := s.Result(ctx, "INV-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got)

	clk.Advance(10 * time.Minute)
	_, ok, err = s.Result(ctx, "INV-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettlementGuard(t *testing.T) {
	clk := clock.NewFake(start)
	g := NewSettlementGuard(clk)
	ctx := context.Background()

	ok, err := g.Acquire(ctx, "INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = g.Acquire(ctx, "INV-1", time.Minute)
	assert.False(t, ok, "held lease blocks a second attempt")

	ok, _ = g.Acquire(ctx, "INV-2", time.Minute)
	assert.True(t, ok, "leases are per invoice")

	require.NoError(t, g.Release(ctx, "INV-1"))
	ok, _ = g.Acquire(ctx, "INV-1", time.Minute)
	assert.True(t, ok)

	clk.Advance(2 * time.Minute)
	ok, _ = g.Acquire(ctx, "INV-2", time.Minute)
	assert.True(t, ok, "expired lease is reclaimed")
}

func TestRateLimitStore(t *testing.T) {
	clk := clock.NewFake(start)
	s := NewRateLimitStore(clk)
	ctx := context.Background()

	for i := int64(1); i <= 2; i++ {
		r, err := s.Allow(ctx, "ip:checkout", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, r.Allowed)
		assert.Equal(t, 2-i, r.Remaining)
	}
	r, _ := s.Allow(ctx, "ip:checkout", 2, time.Minute)
	assert.False(t, r.Allowed)

	clk.Advance(time.Minute)
	r, _ = s.Allow(ctx, "ip:checkout", 2, time.Minute)
	assert.True(t, r.Allowed)
}
