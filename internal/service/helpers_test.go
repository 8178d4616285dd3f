package service

import (
	"math/rand"
	"testing"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var testStart = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestIDs(clk clock.Clock) *IDGeneratorImpl {
	return NewIDGenerator(clk, rand.New(rand.NewSource(42)))
}

// newTestLedger returns an in-memory ledger on a fake clock.
func newTestLedger(t *testing.T, store ports.StateStore) (*Ledger, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(testStart)
	return NewLedger(domain.State{}, store, newTestIDs(clk), clk, zerolog.Nop()), clk
}

func mug(qty int) domain.LineItem {
	return domain.LineItem{ID: "1", Title: "Mug", Price: dec("2.50"), Image: "https://img/mug.png", Quantity: qty}
}

func poster() domain.LineItem {
	return domain.LineItem{ID: "2", Title: "Poster", Price: dec("0.01"), Image: "https://img/poster.png"}
}
