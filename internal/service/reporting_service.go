package service

import (
	"context"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"
	"localpay-gateway/pkg/clock"

	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService over the ledger.
type reportingService struct {
	invoices ports.InvoiceStore
	cart     ports.CartAggregator
	clock    clock.Clock
}

// NewReportingService creates a new reporting service.
func NewReportingService(invoices ports.InvoiceStore, cart ports.CartAggregator, clk clock.Clock) ports.ReportingService {
	return &reportingService{
		invoices: invoices,
		cart:     cart,
		clock:    clk,
	}
}

// GetDashboardStats aggregates invoices created within period. Revenue is
// the sum of paid amounts.
func (s *reportingService) GetDashboardStats(ctx context.Context, period string) (*ports.DashboardStats, error) {
	switch period {
	case "day", "week", "month", "all", "":
	default:
		return nil, apperror.Validation("invalid period: must be day, week, month, or all")
	}
	since := periodStart(s.clock.Now(), period)

	stats := &ports.DashboardStats{
		Revenue:   decimal.Zero,
		CartTotal: s.cart.CartTotal(ctx),
		CartItems: len(s.cart.Cart(ctx)),
	}

	for _, inv := range s.invoices.List(ctx) {
		if inv.CreatedAt < since {
			continue
		}
		stats.TotalInvoices++
		switch inv.Status {
		case domain.InvoiceStatusPending:
			stats.Pending++
		case domain.InvoiceStatusPaid:
			stats.Paid++
			stats.Revenue = stats.Revenue.Add(inv.Amount)
		case domain.InvoiceStatusFailed:
			stats.Failed++
		}
		if stats.Latest == nil {
			latest := inv
			stats.Latest = &latest
		}
	}

	return stats, nil
}

// periodStart returns the epoch ms lower bound for period, 0 for all.
func periodStart(now time.Time, period string) int64 {
	switch period {
	case "day":
		return now.AddDate(0, 0, -1).UnixMilli()
	case "week":
		return now.AddDate(0, 0, -7).UnixMilli()
	case "month":
		return now.AddDate(0, -1, 0).UnixMilli()
	}
	return 0
}
