package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Storage keys for the persisted ledger.
const (
	StateKey       = "localpay_state_v1"
	LegacyStateKey = "localpay_invoices"
)

// State is the whole persisted document: every invoice plus the cart.
// Invoices are stored newest first.
type State struct {
	Invoices []Invoice  `json:"invoices"`
	Cart     []LineItem `json:"cart"`
}

// Clone deep-copies the state.
func (s State) Clone() State {
	return State{
		Invoices: CloneInvoices(s.Invoices),
		Cart:     CloneItems(s.Cart),
	}
}

// Normalize replaces nil collections with empty ones so an empty state
// serializes as [] rather than null.
func (s State) Normalize() State {
	if s.Invoices == nil {
		s.Invoices = []Invoice{}
	}
	if s.Cart == nil {
		s.Cart = []LineItem{}
	}
	return s
}

// LegacyInvoice is the invoice record found under LegacyStateKey.
type LegacyInvoice struct {
	ID              string          `json:"id"`
	MerchantName    string          `json:"merchantName"`
	MerchantAddress string          `json:"merchantAddress"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       int64           `json:"createdAt"`
	Status          InvoiceStatus   `json:"status"`
	TxHash          string          `json:"txHash,omitempty"`
}

// Upgrade converts a legacy record to the current shape.
func (l LegacyInvoice) Upgrade() Invoice {
	status := l.Status
	if !status.Valid() {
		status = InvoiceStatusPending
	}
	return Invoice{
		ID:              l.ID,
		Merchant:        l.MerchantName,
		MerchantAddress: l.MerchantAddress,
		Amount:          l.Amount,
		CreatedAt:       l.CreatedAt,
		Status:          status,
		TransactionHash: l.TxHash,
	}
}

// DecodeState parses a document stored under StateKey.
func DecodeState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return State{}, fmt.Errorf("decoding state: %w", err)
	}
	for n := range s.Invoices {
		if !s.Invoices[n].Status.Valid() {
			return State{}, fmt.Errorf("decoding state: invoice %s has unknown status %q", s.Invoices[n].ID, s.Invoices[n].Status)
		}
	}
	return s.Normalize(), nil
}

// DecodeLegacyState parses the invoice-only array stored under LegacyStateKey.
// The cart was never persisted in that format.
func DecodeLegacyState(data []byte) (State, error) {
	var legacy []LegacyInvoice
	if err := json.Unmarshal(data, &legacy); err != nil {
		return State{}, fmt.Errorf("decoding legacy invoices: %w", err)
	}
	s := State{Invoices: make([]Invoice, 0, len(legacy))}
	for _, l := range legacy {
		s.Invoices = append(s.Invoices, l.Upgrade())
	}
	return s.Normalize(), nil
}
