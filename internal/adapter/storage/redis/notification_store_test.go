package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"localpay-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toast(id string, created time.Time, ttl time.Duration) domain.Notification {
	return domain.Notification{ID: id, Level: domain.NotificationSuccess, Message: "Payment received", CreatedAt: created, ExpiresAt: created.Add(ttl)}
}

func TestNotificationStore_Recent(t *testing.T) {
	_, client := newTestClient(t)
	store := NewNotificationStore(client)
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, toast("a", start, 3*time.Second)))
	require.NoError(t, store.Push(ctx, toast("b", start.Add(time.Second), 3*time.Second)))

	list, err := store.Recent(ctx, start.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)

	list, err = store.Recent(ctx, start.Add(3*time.Second))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)
}

func TestNotificationStore_Cap(t *testing.T) {
	_, client := newTestClient(t)
	store := NewNotificationStore(client)
	ctx := context.Background()

	for i := 0; i < maxToasts+10; i++ {
		require.NoError(t, store.Push(ctx, toast(fmt.Sprint(i), start.Add(time.Duration(i)*time.Millisecond), time.Minute)))
	}
	list, err := store.Recent(ctx, start)
	require.NoError(t, err)
	assert.Len(t, list, maxToasts)
	assert.Equal(t, "10", list[0].ID)
}

func TestNotificationStore_Results(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewNotificationStore(client)
	ctx := context.Background()

	_, ok, err := store.Result(ctx, "INV-1")
	require.NoError(t, err)
	assert.False(t, ok)

	p := domain.SettlementPayload{
		InvoiceID: "INV-1",
		Status:    domain.InvoiceStatusPaid,
		Strategy:  domain.StrategySimulated,
		Proof:     "sim_1_abcdef",
		CreatedAt: start,
	}
	require.NoError(t, store.PutResult(ctx, p, 10*time.Minute))

	got, ok, err := store.Result(ctx, "INV-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.Proof, got.Proof)
	assert.True(t, p.CreatedAt.Equal(got.CreatedAt))

	mr.FastForward(11 * time.Minute)
	_, ok, err = store.Result(ctx, "INV-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
