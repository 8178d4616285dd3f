package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"localpay-gateway/internal/adapter/storage/localfs"
	"localpay-gateway/internal/cli"
	"localpay-gateway/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedState(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	t.Setenv("LPAY_STORAGE_DRIVER", "file")
	t.Setenv("LPAY_STORAGE_PATH", path)
	t.Setenv("LPAY_STORAGE_LEGACY_PATH", filepath.Join(t.TempDir(), "legacy.json"))

	state := domain.State{Invoices: []domain.Invoice{
		{ID: "INV-3", Merchant: "Kiosk", Amount: decimal.RequireFromString("1.25"), Status: domain.InvoiceStatusPending, CreatedAt: 1773480415000},
		{ID: "INV-2", Merchant: "Kiosk", Amount: decimal.RequireFromString("9"), Status: domain.InvoiceStatusFailed, CreatedAt: 1773480414000},
		{ID: "INV-1", Merchant: "Corner Shop", Amount: decimal.RequireFromString("5.01"), Status: domain.InvoiceStatusPaid, CreatedAt: 1773480413000, TransactionHash: "sim_1773480413000_abc123"},
	}}
	require.NoError(t, localfs.NewStateFile(path, "", zerolog.Nop()).Save(context.Background(), state))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInvoicesList_Table(t *testing.T) {
	seedState(t)

	out, err := run(t, "invoices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "INV-1")
	assert.Contains(t, out, "sim_1773480413000_abc123")
	assert.Contains(t, out, "2026-03-14T09:26:53Z")
	assert.Contains(t, out, "3 invoice(s)")
}

func TestInvoicesList_FilterJSON(t *testing.T) {
	seedState(t)

	out, err := run(t, "invoices", "list", "--status", "paid", "--json")
	require.NoError(t, err)

	var got []domain.Invoice
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "INV-1", got[0].ID)

	out, err = run(t, "invoices", "list", "--limit", "2", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "INV-3", got[0].ID)
}

func TestInvoicesList_InvalidStatus(t *testing.T) {
	_, err := run(t, "invoices", "list", "--status", "refunded")
	assert.ErrorContains(t, err, "invalid --status")
}

func TestInvoicesList_EmptyStore(t *testing.T) {
	t.Setenv("LPAY_STORAGE_PATH", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("LPAY_STORAGE_LEGACY_PATH", filepath.Join(t.TempDir(), "missing-legacy.json"))

	out, err := run(t, "invoices", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestInvoicesShow(t *testing.T) {
	seedState(t)

	out, err := run(t, "invoices", "show", "INV-2")
	require.NoError(t, err)
	var inv domain.Invoice
	require.NoError(t, json.Unmarshal([]byte(out), &inv))
	assert.Equal(t, domain.InvoiceStatusFailed, inv.Status)

	_, err = run(t, "invoices", "show", "INV-404")
	assert.ErrorContains(t, err, "INV-404")

	_, err = run(t, "invoices", "show")
	assert.Error(t, err)
}

func TestChainWalletInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet-info", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.WalletInfo{Address: "EQop", BalanceInTON: "1.0000", Funded: true})
	}))
	defer srv.Close()
	t.Setenv("LPAY_CHAIN_BASE_URL", srv.URL)

	out, err := run(t, "chain", "wallet-info")
	require.NoError(t, err)
	assert.Contains(t, out, `"address": "EQop"`)
}

func TestChainCollectionInfo_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"No collection deployed"}`))
	}))
	defer srv.Close()
	t.Setenv("LPAY_CHAIN_BASE_URL", srv.URL)

	_, err := run(t, "chain", "collection-info")
	assert.ErrorContains(t, err, "404")
}

func TestMigrate_List(t *testing.T) {
	out, err := run(t, "migrate", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "000001_create_sales.up.sql")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "localpayctl dev")
}
