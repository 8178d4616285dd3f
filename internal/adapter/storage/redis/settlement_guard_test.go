package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementGuard(t *testing.T) {
	mr, client := newTestClient(t)
	guard := NewSettlementGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, "INV-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second attempt must wait")

	require.NoError(t, guard.Release(ctx, "INV-1"))
	ok, err = guard.Acquire(ctx, "INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)
	ok, err = guard.Acquire(ctx, "INV-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "lease expires with its TTL")
}

func TestSettlementGuard_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	guard := NewSettlementGuard(client)
	mr.Close()

	_, err := guard.Acquire(context.Background(), "INV-1", time.Minute)
	assert.Error(t, err)
}
