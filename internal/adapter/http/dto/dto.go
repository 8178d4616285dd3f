package dto

import (
	"localpay-gateway/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest is the request body for adding a product to the cart.
type AddCartItemRequest struct {
	ID       domain.ProductID `json:"id" binding:"required"`
	Title    string           `json:"title" binding:"required,max=200"`
	Price    decimal.Decimal  `json:"price" binding:"required,amount_gt0"`
	Image    string           `json:"image,omitempty" binding:"omitempty,safe_url" sanitize:"-"`
	Quantity int              `json:"quantity" binding:"omitempty,min=0,max=1000"` // 0 means 1
}

// CartResponse is the cart snapshot with its total.
type CartResponse struct {
	Items []domain.LineItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

// WalletSession is the connected wallet handed over by the wallet-connect UI.
type WalletSession struct {
	ID        string `json:"id" binding:"required,max=128" sanitize:"-"`
	PublicKey string `json:"public_key" binding:"required,hexadecimal,len=64" sanitize:"-"`
	Address   string `json:"address,omitempty" binding:"omitempty,max=128" sanitize:"-"`
}

func (w *WalletSession) toDomain() *domain.WalletSession {
	if w == nil {
		return nil
	}
	return &domain.WalletSession{ID: w.ID, PublicKey: w.PublicKey, Address: w.Address}
}

// CheckoutRequest is the request body for POST /api/v1/checkout.
type CheckoutRequest struct {
	Merchant        string         `json:"merchant,omitempty" binding:"omitempty,max=100"`
	MerchantAddress string         `json:"merchant_address,omitempty" binding:"omitempty,max=128" sanitize:"-"`
	Strategy        string         `json:"strategy,omitempty" binding:"omitempty,strategy"`
	Session         *WalletSession `json:"session,omitempty"`
	Recipient       string         `json:"recipient,omitempty" binding:"omitempty,max=128" sanitize:"-"`
}

func (r *CheckoutRequest) WalletSession() *domain.WalletSession { return r.Session.toDomain() }

// CreateInvoiceRequest is the request body for a standalone invoice.
type CreateInvoiceRequest struct {
	Merchant        string            `json:"merchant" binding:"required,max=100"`
	MerchantAddress string            `json:"merchant_address,omitempty" binding:"omitempty,max=128" sanitize:"-"`
	Amount          decimal.Decimal   `json:"amount" binding:"required,amount_gt0"`
	Items           []domain.LineItem `json:"items,omitempty" binding:"omitempty,max=100"`
}

// SettleInvoiceRequest is the request body for POST /api/v1/invoices/:id/settle.
type SettleInvoiceRequest struct {
	Strategy        string         `json:"strategy,omitempty" binding:"omitempty,strategy"`
	Session         *WalletSession `json:"session,omitempty"`
	MerchantAddress string         `json:"merchant_address,omitempty" binding:"omitempty,max=128" sanitize:"-"`
	Recipient       string         `json:"recipient,omitempty" binding:"omitempty,max=128" sanitize:"-"`
	// Async returns 202 immediately and settles in the background.
	Async bool `json:"async,omitempty"`
}

func (r *SettleInvoiceRequest) WalletSession() *domain.WalletSession { return r.Session.toDomain() }

// InvoiceListResponse wraps the invoice list.
type InvoiceListResponse struct {
	Items []domain.Invoice `json:"items"`
	Total int              `json:"total"`
}

// DashboardStatsResponse is the response for dashboard statistics.
type DashboardStatsResponse struct {
	Period        string          `json:"period"`
	TotalInvoices int64           `json:"total_invoices"`
	Pending       int64           `json:"pending"`
	Paid          int64           `json:"paid"`
	Failed        int64           `json:"failed"`
	Revenue       decimal.Decimal `json:"revenue"`
	CartTotal     decimal.Decimal `json:"cart_total"`
	CartItems     int             `json:"cart_items"`
	Latest        *domain.Invoice `json:"latest_invoice,omitempty"`
}

// NotificationListResponse wraps the live toasts.
type NotificationListResponse struct {
	Items []domain.Notification `json:"items"`
}

// DependencyStatus is one entry of the health report.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the response for the health check endpoint.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}
