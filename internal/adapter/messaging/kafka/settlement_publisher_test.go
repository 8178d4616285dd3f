package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"localpay-gateway/config"
	"localpay-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestSettlementPublisher_RecordSale(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w, "m_001", zerolog.Nop())

	inv := domain.Invoice{
		ID:              "INV-01J",
		Merchant:        "Demo Merchant",
		Amount:          decimal.RequireFromString("0.01"),
		Status:          domain.InvoiceStatusPaid,
		Strategy:        domain.StrategyWallet,
		TransactionHash: "abc123",
		SettledAt:       1773480413000,
	}
	require.NoError(t, p.RecordSale(context.Background(), inv))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "INV-01J", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventInvoiceSettled, string(msg.Headers[0].Value))

	var ev map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &ev))
	assert.Equal(t, "invoice.settled", ev["event"])
	assert.Equal(t, "m_001", ev["merchant_id"])
	assert.Equal(t, "0.01", ev["amount"])
	assert.Equal(t, "paid", ev["status"])
	assert.Equal(t, "wallet", ev["strategy"])
	assert.Equal(t, "2026-03-14T09:26:53Z", ev["settled_at"])
	assert.Equal(t, []any{}, ev["items"])

	assert.Equal(t, "kafka", p.Name())
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestSettlementPublisher_WriteError(t *testing.T) {
	p := newPublisher(&fakeWriter{err: errors.New("leader not available")}, "m_001", zerolog.Nop())

	err := p.RecordSale(context.Background(), domain.Invoice{ID: "INV-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leader not available")
}

func TestNewSettlementPublisher_Validation(t *testing.T) {
	_, err := NewSettlementPublisher(config.KafkaConfig{Topic: "t"}, "m", zerolog.Nop())
	assert.Error(t, err)

	_, err = NewSettlementPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}}, "m", zerolog.Nop())
	assert.Error(t, err)

	p, err := NewSettlementPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "localpay.invoice.settled"}, "m", zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}
