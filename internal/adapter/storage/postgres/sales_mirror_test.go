package postgres

import (
	"context"
	"errors"
	"testing"

	"localpay-gateway/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidInvoice() domain.Invoice {
	return domain.Invoice{
		ID:              "INV-01J",
		Merchant:        "Demo Merchant",
		Amount:          decimal.RequireFromString("5.01"),
		CreatedAt:       1773480413000,
		SettledAt:       1773480415500,
		Status:          domain.InvoiceStatusPaid,
		TransactionHash: "sim_1773480415500_abc123",
		Items: []domain.LineItem{
			{ID: "1", Title: "Mug", Price: decimal.RequireFromString("2.5"), Quantity: 2},
			{ID: "2", Title: "Poster", Price: decimal.RequireFromString("0.01"), Quantity: 1},
		},
	}
}

func TestSalesMirror_RecordSale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	inv := paidInvoice()
	mirror := NewSalesMirror(mock, "m_001")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").
		WithArgs("m_001", inv.ID, inv.Amount, pgxmock.AnyArg(), inv.TransactionHash, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE products SET stock = GREATEST").
		WithArgs(2, "Mug", "m_001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE products SET stock = GREATEST").
		WithArgs(1, "Poster", "m_001").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectCommit()

	err = mirror.RecordSale(context.Background(), inv)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, "postgres", mirror.Name())
}

func TestSalesMirror_RecordSale_AlreadyMirrored(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	inv := paidInvoice()
	mirror := NewSalesMirror(mock, "m_001")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").
		WithArgs("m_001", inv.ID, inv.Amount, pgxmock.AnyArg(), inv.TransactionHash, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	err = mirror.RecordSale(context.Background(), inv)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesMirror_RecordSale_InsertError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mirror := NewSalesMirror(mock, "m_001")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").
		WillReturnError(errors.New("relation \"sales\" does not exist"))
	mock.ExpectRollback()

	err = mirror.RecordSale(context.Background(), paidInvoice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert sale")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesMirror_RecordSale_StockError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mirror := NewSalesMirror(mock, "m_001")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sales").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE products").WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	err = mirror.RecordSale(context.Background(), paidInvoice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `decrement stock for "Mug"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoldAt(t *testing.T) {
	inv := paidInvoice()
	assert.Equal(t, int64(1773480415500), soldAt(inv).UnixMilli())

	inv.SettledAt = 0
	assert.Equal(t, int64(1773480413000), soldAt(inv).UnixMilli())
}
