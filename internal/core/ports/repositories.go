package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"localpay-gateway/internal/core/domain"
)

// ErrStateNotFound is returned by StateStore.Load when nothing was ever saved.
var ErrStateNotFound = errors.New("no persisted state")

// StateStore persists the whole ledger document. Save replaces the stored
// document in one write; a reader sees either the old or the new document.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// SalesMirror replicates a settled invoice to a remote, non-authoritative store.
type SalesMirror interface {
	RecordSale(ctx context.Context, invoice domain.Invoice) error
	Name() string
}

// SettlementGuard prevents two settlement attempts on one invoice from
// running at the same time.
type SettlementGuard interface {
	// Acquire returns false when another attempt holds the invoice.
	Acquire(ctx context.Context, invoiceID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, invoiceID string) error
}

// NotificationStore keeps toasts and settlement results for the UI.
type NotificationStore interface {
	Push(ctx context.Context, n domain.Notification) error
	// Recent returns toasts not yet expired at now, oldest first.
	Recent(ctx context.Context, now time.Time) ([]domain.Notification, error)
	PutResult(ctx context.Context, payload domain.SettlementPayload, ttl time.Duration) error
	// Result returns ok=false when no result is stored for the invoice.
	Result(ctx context.Context, invoiceID string) (domain.SettlementPayload, bool, error)
}
