package domain

import (
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

// Valid reports whether s is a known status.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusFailed:
		return true
	}
	return false
}

// Invoice is one payment attempt. It is created pending and moves exactly
// once to paid or failed.
type Invoice struct {
	ID              string          `json:"id"`
	Merchant        string          `json:"merchant"`
	MerchantAddress string          `json:"merchant_address,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       int64           `json:"created_at"` // epoch ms
	Status          InvoiceStatus   `json:"status"`
	TransactionHash string          `json:"transaction_hash,omitempty"`
	Items           []LineItem      `json:"items,omitempty"`
	SettledAt       int64           `json:"settled_at,omitempty"` // epoch ms
	Strategy        Strategy        `json:"strategy,omitempty"`
}

// IsTerminal returns true once the invoice has been paid or failed.
func (i *Invoice) IsTerminal() bool {
	return i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusFailed
}

// Clone returns a copy that shares no memory with i.
func (i Invoice) Clone() Invoice {
	out := i
	out.Items = CloneItems(i.Items)
	return out
}

// PrimaryItem returns the display name and image used for chain settlement:
// the first line item, or the merchant name when the invoice has no items.
func (i *Invoice) PrimaryItem() (name, image string) {
	if len(i.Items) > 0 {
		return i.Items[0].Title, i.Items[0].Image
	}
	return i.Merchant, ""
}

// CloneInvoices deep-copies a slice of invoices.
func CloneInvoices(in []Invoice) []Invoice {
	if in == nil {
		return nil
	}
	out := make([]Invoice, len(in))
	for n := range in {
		out[n] = in[n].Clone()
	}
	return out
}

// InvoiceDraft carries the caller-supplied fields of a new invoice.
type InvoiceDraft struct {
	Merchant        string
	MerchantAddress string
	Amount          decimal.Decimal
	Items           []LineItem
}
