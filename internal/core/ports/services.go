package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"localpay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// InvoiceStore owns invoice records. Status changes only through MarkPaid
// and MarkFailed.
type InvoiceStore interface {
	Create(ctx context.Context, draft domain.InvoiceDraft) (domain.Invoice, error)
	// BeginSettlement checks the invoice is still pending and records the
	// strategy about to settle it.
	BeginSettlement(ctx context.Context, id string, strategy domain.Strategy) (domain.Invoice, error)
	MarkPaid(ctx context.Context, id, proof string) error
	MarkFailed(ctx context.Context, id string) error
	// List returns a snapshot in stored order, newest first.
	List(ctx context.Context) []domain.Invoice
	Get(ctx context.Context, id string) (domain.Invoice, error)
	// Latest returns ok=false when there are no invoices.
	Latest(ctx context.Context) (domain.Invoice, bool)
}

// CartAggregator owns the line items selected before checkout.
type CartAggregator interface {
	AddToCart(ctx context.Context, item domain.LineItem, qty int) error
	RemoveFromCart(ctx context.Context, id domain.ProductID)
	ClearCart(ctx context.Context)
	CartTotal(ctx context.Context) decimal.Decimal
	Cart(ctx context.Context) []domain.LineItem
}

// IDGenerator produces every synthetic identifier in the service.
type IDGenerator interface {
	InvoiceID() string
	NotificationID() string
	// Proof returns "<prefix>_<epoch ms>_<n base36 chars>".
	Proof(prefix string, n int) string
}

// --- External collaborators ---

// WalletConnector submits a transfer to a connected wallet and waits for it
// to be signed. The deadline of ctx bounds the wait.
type WalletConnector interface {
	SendTransaction(ctx context.Context, session domain.WalletSession, req domain.TransferRequest) domain.Outcome
}

// ChainClient talks to the NFT chain service.
type ChainClient interface {
	// DeployCollection returns the deploy response as Outcome.Payload and the
	// collection address as the proof.
	DeployCollection(ctx context.Context, req domain.DeployCollectionRequest) domain.Outcome
	// MintNFT returns the mint response as Outcome.Payload and the item address as the proof.
	MintNFT(ctx context.Context, req domain.MintNFTRequest) domain.Outcome
	WalletInfo(ctx context.Context) (*domain.WalletInfo, error)
	CollectionInfo(ctx context.Context) (*domain.CollectionInfo, error)
}

// --- Service Ports (Business Logic) ---

// SettlementStrategy resolves one invoice through one external path.
type SettlementStrategy interface {
	Name() domain.Strategy
	Settle(ctx context.Context, invoice domain.Invoice, req domain.SettleRequest) domain.Outcome
}

// SettlementService drives a pending invoice to paid or failed.
type SettlementService interface {
	Settle(ctx context.Context, req domain.SettleRequest) (*domain.SettlementResult, error)
	// SettleAsync validates the request and settles in the background.
	SettleAsync(ctx context.Context, req domain.SettleRequest) (*domain.Invoice, error)
}

// CheckoutRequest turns the cart into an invoice and settles it.
type CheckoutRequest struct {
	Merchant        string
	MerchantAddress string
	Strategy        domain.Strategy
	Session         *domain.WalletSession
	Recipient       string
}

// CheckoutService runs the cart to invoice to settlement flow.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*domain.SettlementResult, error)
}

// NotificationChannel surfaces settlement outcomes to the UI. It holds no
// business state.
type NotificationChannel interface {
	Notify(ctx context.Context, level domain.NotificationLevel, message, invoiceID string)
	RedirectWithResult(ctx context.Context, payload domain.SettlementPayload)
	Recent(ctx context.Context) []domain.Notification
	Result(ctx context.Context, invoiceID string) (*domain.SettlementPayload, error)
}

// MirrorDispatcher hands settled invoices to the sales mirror in the background.
type MirrorDispatcher interface {
	Mirror(ctx context.Context, invoice domain.Invoice)
	Wait()
}

// SettlementRecorder observes settlement attempts.
type SettlementRecorder interface {
	ObserveSettlement(strategy domain.Strategy, outcome domain.OutcomeKind, elapsed time.Duration)
	ObserveMirror(mirror string, err error)
}

// DashboardStats holds aggregated invoice statistics.
type DashboardStats struct {
	TotalInvoices int64
	Pending       int64
	Paid          int64
	Failed        int64
	Revenue       decimal.Decimal // Sum of paid amounts
	CartTotal     decimal.Decimal
	CartItems     int
	Latest        *domain.Invoice
}

// ReportingService defines dashboard business logic.
type ReportingService interface {
	GetDashboardStats(ctx context.Context, period string) (*DashboardStats, error)
}
