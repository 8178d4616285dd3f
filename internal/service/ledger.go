package service

import (
	"context"
	"errors"
	"sync"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Ledger is the single owner of invoices and the cart. Every mutation runs
// under one mutex and is persisted before the lock is released, so stored
// documents follow mutation order.
type Ledger struct {
	mu       sync.Mutex
	invoices []domain.Invoice // newest first
	cart     domain.Cart

	store ports.StateStore // nil = memory only
	ids   ports.IDGenerator
	clock clock.Clock
	log   zerolog.Logger
}

var (
	_ ports.InvoiceStore   = (*Ledger)(nil)
	_ ports.CartAggregator = (*Ledger)(nil)
)

// NewLedger creates a ledger seeded with initial.
func NewLedger(initial domain.State, store ports.StateStore, ids ports.IDGenerator, clk clock.Clock, log zerolog.Logger) *Ledger {
	initial = initial.Clone()
	return &Ledger{
		invoices: initial.Invoices,
		cart:     domain.Cart{Items: initial.Cart},
		store:    store,
		ids:      ids,
		clock:    clk,
		log:      log,
	}
}

// RestoreLedger loads the persisted state. Missing or unreadable state is
// logged and the ledger starts empty; startup never fails here.
func RestoreLedger(ctx context.Context, store ports.StateStore, ids ports.IDGenerator, clk clock.Clock, log zerolog.Logger) *Ledger {
	state, err := store.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrStateNotFound):
		log.Info().Msg("no persisted ledger state, starting empty")
		state = domain.State{}
	case err != nil:
		log.Warn().Err(err).Msg("persisted ledger state unreadable, starting empty")
		state = domain.State{}
	default:
		log.Info().
			Int("invoices", len(state.Invoices)).
			Int("cart_items", len(state.Cart)).
			Msg("ledger state restored")
	}
	return NewLedger(state, store, ids, clk, log)
}

// ---- Invoices ----

// Create stores a new pending invoice in front of the collection.
func (l *Ledger) Create(ctx context.Context, draft domain.InvoiceDraft) (domain.Invoice, error) {
	if !draft.Amount.IsPositive() {
		return domain.Invoice{}, apperror.ErrInvalidAmount()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	inv := domain.Invoice{
		ID:              l.ids.InvoiceID(),
		Merchant:        draft.Merchant,
		MerchantAddress: draft.MerchantAddress,
		Amount:          draft.Amount,
		CreatedAt:       l.clock.Now().UnixMilli(),
		Status:          domain.InvoiceStatusPending,
		Items:           domain.CloneItems(draft.Items),
	}
	l.invoices = append([]domain.Invoice{inv}, l.invoices...)
	l.persistLocked(ctx)

	l.log.Info().
		Str("invoice_id", inv.ID).
		Str("amount", inv.Amount.String()).
		Int("items", len(inv.Items)).
		Msg("invoice created")

	return inv.Clone(), nil
}

// BeginSettlement fails with INV_004 when the invoice is already terminal.
func (l *Ledger) BeginSettlement(ctx context.Context, id string, strategy domain.Strategy) (domain.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv := l.findLocked(id)
	if inv == nil {
		return domain.Invoice{}, apperror.ErrInvoiceNotFound(id)
	}
	if inv.IsTerminal() {
		return domain.Invoice{}, apperror.ErrInvoiceNotPending(id)
	}
	if inv.Strategy != strategy {
		inv.Strategy = strategy
		l.persistLocked(ctx)
	}
	return inv.Clone(), nil
}

// MarkPaid moves a pending invoice to paid with its settlement proof.
// A second completion is a double settlement: it is logged and returned,
// and the invoice is left untouched.
func (l *Ledger) MarkPaid(ctx context.Context, id, proof string) error {
	if proof == "" {
		return apperror.ErrEmptyProof()
	}
	return l.transition(ctx, id, domain.InvoiceStatusPaid, proof)
}

// MarkFailed moves a pending invoice to failed.
func (l *Ledger) MarkFailed(ctx context.Context, id string) error {
	return l.transition(ctx, id, domain.InvoiceStatusFailed, "")
}

func (l *Ledger) transition(ctx context.Context, id string, to domain.InvoiceStatus, proof string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv := l.findLocked(id)
	if inv == nil {
		return apperror.ErrInvoiceNotFound(id)
	}
	if inv.IsTerminal() {
		l.log.Error().
			Str("invoice_id", id).
			Str("status", string(inv.Status)).
			Str("attempted", string(to)).
			Msg("double settlement attempt rejected")
		return apperror.ErrDoubleSettlement(id)
	}

	inv.Status = to
	inv.TransactionHash = proof
	inv.SettledAt = l.clock.Now().UnixMilli()
	l.persistLocked(ctx)

	l.log.Info().
		Str("invoice_id", id).
		Str("status", string(to)).
		Str("transaction_hash", proof).
		Msg("invoice settled")
	return nil
}

// List returns a deep copy of every invoice, newest first.
func (l *Ledger) List(ctx context.Context) []domain.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := domain.CloneInvoices(l.invoices)
	if out == nil {
		out = []domain.Invoice{}
	}
	return out
}

func (l *Ledger) Get(ctx context.Context, id string) (domain.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv := l.findLocked(id)
	if inv == nil {
		return domain.Invoice{}, apperror.ErrInvoiceNotFound(id)
	}
	return inv.Clone(), nil
}

// Latest returns the most recently created invoice.
func (l *Ledger) Latest(ctx context.Context) (domain.Invoice, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.invoices) == 0 {
		return domain.Invoice{}, false
	}
	return l.invoices[0].Clone(), true
}

// ---- Cart ----

// AddToCart merges qty of item into the cart. qty 0 means 1.
func (l *Ledger) AddToCart(ctx context.Context, item domain.LineItem, qty int) error {
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return apperror.ErrInvalidQuantity()
	}
	if item.ID == "" {
		return apperror.Validation("product id is required")
	}
	if item.Price.IsNegative() {
		return apperror.Validation("price must not be negative")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.cart.Add(item, qty)
	l.persistLocked(ctx)
	return nil
}

// RemoveFromCart deletes the row for id; unknown ids are ignored.
func (l *Ledger) RemoveFromCart(ctx context.Context, id domain.ProductID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.cart.Items)
	l.cart.Remove(id)
	if len(l.cart.Items) != before {
		l.persistLocked(ctx)
	}
}

func (l *Ledger) ClearCart(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cart.Clear()
	l.persistLocked(ctx)
}

func (l *Ledger) CartTotal(ctx context.Context) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cart.Total()
}

func (l *Ledger) Cart(ctx context.Context) []domain.LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := domain.CloneItems(l.cart.Items)
	if out == nil {
		out = []domain.LineItem{}
	}
	return out
}

// Snapshot returns a deep copy of the whole ledger.
func (l *Ledger) Snapshot() domain.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stateLocked()
}

func (l *Ledger) stateLocked() domain.State {
	return domain.State{
		Invoices: domain.CloneInvoices(l.invoices),
		Cart:     domain.CloneItems(l.cart.Items),
	}.Normalize()
}

func (l *Ledger) findLocked(id string) *domain.Invoice {
	for n := range l.invoices {
		if l.invoices[n].ID == id {
			return &l.invoices[n]
		}
	}
	return nil
}

// persistLocked saves the whole document. Failures are logged; the
// in-memory ledger stays authoritative.
func (l *Ledger) persistLocked(ctx context.Context) {
	if l.store == nil {
		return
	}
	if err := l.store.Save(context.WithoutCancel(ctx), l.stateLocked()); err != nil {
		l.log.Error().Err(err).Msg("failed to persist ledger state")
	}
}
