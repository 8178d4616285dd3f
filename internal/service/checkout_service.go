package service

import (
	"context"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// DefaultMerchant is used when checkout names no merchant.
const DefaultMerchant = "Demo Merchant"

// checkoutService implements ports.CheckoutService.
type checkoutService struct {
	cart       ports.CartAggregator
	invoices   ports.InvoiceStore
	settlement ports.SettlementService
	log        zerolog.Logger
}

// NewCheckoutService creates the cart to invoice to settlement flow.
func NewCheckoutService(
	cart ports.CartAggregator,
	invoices ports.InvoiceStore,
	settlement ports.SettlementService,
	log zerolog.Logger,
) ports.CheckoutService {
	return &checkoutService{
		cart:       cart,
		invoices:   invoices,
		settlement: settlement,
		log:        log,
	}
}

// Checkout snapshots the cart into a pending invoice and settles it. The
// cart is cleared only when settlement succeeds.
func (s *checkoutService) Checkout(ctx context.Context, req ports.CheckoutRequest) (*domain.SettlementResult, error) {
	items := s.cart.Cart(ctx)
	if len(items) == 0 {
		return nil, apperror.ErrCartEmpty()
	}

	snapshot := domain.Cart{Items: items}

	merchant := req.Merchant
	if merchant == "" {
		merchant = DefaultMerchant
	}

	invoice, err := s.invoices.Create(ctx, domain.InvoiceDraft{
		Merchant:        merchant,
		MerchantAddress: req.MerchantAddress,
		Amount:          snapshot.Total(),
		Items:           items,
	})
	if err != nil {
		return nil, err
	}

	result, err := s.settlement.Settle(ctx, domain.SettleRequest{
		InvoiceID:       invoice.ID,
		Strategy:        req.Strategy,
		Session:         req.Session,
		MerchantAddress: req.MerchantAddress,
		Recipient:       req.Recipient,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("invoice_id", invoice.ID).Msg("checkout settlement failed, cart kept")
		return nil, err
	}

	s.cart.ClearCart(ctx)
	return result, nil
}
