package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SalesMirror replicates paid invoices into the merchant's sales table and
// decrements product stock.
type SalesMirror struct {
	pool       Pool
	merchantID string
}

var _ ports.SalesMirror = (*SalesMirror)(nil)

func NewSalesMirror(pool Pool, merchantID string) *SalesMirror {
	return &SalesMirror{pool: pool, merchantID: merchantID}
}

func (m *SalesMirror) Name() string { return "postgres" }

type saleItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// RecordSale inserts the sale and adjusts stock in one transaction. A sale
// already mirrored is skipped so replays do not decrement stock twice.
func (m *SalesMirror) RecordSale(ctx context.Context, invoice domain.Invoice) error {
	items := make([]saleItem, 0, len(invoice.Items))
	for _, it := range invoice.Items {
		items = append(items, saleItem{Name: it.Title, Quantity: it.Quantity, Price: it.Price})
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode sale items: %w", err)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin sale mirror tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `INSERT INTO sales (merchant_id, invoice_id, amount, items, transaction_hash, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (invoice_id) DO NOTHING`,
		m.merchantID, invoice.ID, invoice.Amount, itemsJSON, invoice.TransactionHash, soldAt(invoice),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	if err := m.decrementStock(ctx, tx, invoice.Items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit sale mirror tx: %w", err)
	}
	return nil
}

func (m *SalesMirror) decrementStock(ctx context.Context, tx pgx.Tx, items []domain.LineItem) error {
	for _, it := range items {
		_, err := tx.Exec(ctx, `UPDATE products SET stock = GREATEST(stock - $1, 0), updated_at = NOW()
			WHERE name = $2 AND merchant_id = $3`,
			it.Quantity, it.Title, m.merchantID,
		)
		if err != nil {
			return fmt.Errorf("decrement stock for %q: %w", it.Title, err)
		}
	}
	return nil
}

func soldAt(invoice domain.Invoice) time.Time {
	ms := invoice.SettledAt
	if ms == 0 {
		ms = invoice.CreatedAt
	}
	return time.UnixMilli(ms).UTC()
}
