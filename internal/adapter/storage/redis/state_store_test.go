package redis

import (
	"context"
	"testing"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_NotFound(t *testing.T) {
	_, client := newTestClient(t)
	store := NewStateStore(client)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrStateNotFound)
}

func TestStateStore_RoundTrip(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStateStore(client)
	ctx := context.Background()

	state := domain.State{
		Invoices: []domain.Invoice{{
			ID:     "INV-1",
			Amount: decimal.RequireFromString("0.01"),
			Status: domain.InvoiceStatusPending,
			Items:  []domain.LineItem{{ID: "1", Title: "Mug", Price: decimal.RequireFromString("0.01"), Quantity: 1}},
		}},
	}
	require.NoError(t, store.Save(ctx, state))
	assert.True(t, mr.Exists(domain.StateKey))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Invoices, 1)
	assert.Equal(t, "INV-1", got.Invoices[0].ID)
	assert.Equal(t, "Mug", got.Invoices[0].Items[0].Title)
	assert.NotNil(t, got.Cart)
}

func TestStateStore_LegacyFallback(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStateStore(client)

	require.NoError(t, mr.Set(domain.LegacyStateKey,
		`[{"id":"old","merchantName":"Demo","amount":"2","createdAt":1,"status":"pending"}]`))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Invoices, 1)
	assert.Equal(t, "Demo", got.Invoices[0].Merchant)
}

func TestStateStore_Corrupt(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStateStore(client)
	require.NoError(t, mr.Set(domain.StateKey, `not json`))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrStateNotFound)
}
