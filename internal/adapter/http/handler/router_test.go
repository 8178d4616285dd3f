package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localpay-gateway/internal/adapter/http/handler"
	"localpay-gateway/internal/adapter/storage/memory"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/internal/observability/metrics"
	"localpay-gateway/internal/service"
	"localpay-gateway/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.SettlementServiceImpl) {
	t.Helper()
	clk := clock.NewFake(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	log := zerolog.Nop()
	ids := service.NewIDGenerator(clk, nil)
	ledger := service.NewLedger(domain.State{}, nil, ids, clk, log)
	notifier := service.NewNotificationService(memory.NewNotificationStore(clk), ids, clk, time.Minute, time.Hour, log)
	m := metrics.New()

	settlement := service.NewSettlementService(service.SettlementDeps{
		Invoices:   ledger,
		Strategies: []ports.SettlementStrategy{service.NewSimulatedStrategy(clk, ids, 2*time.Second, 3*time.Second)},
		Notifier:   notifier,
		Mirror:     service.NewMirrorDispatcher(nil, time.Second, m, log),
		Guard:      memory.NewSettlementGuard(clk),
		Recorder:   m,
		IDs:        ids,
		Clock:      clk,
		Logger:     log,
	})

	r := handler.SetupRouter(handler.RouterDeps{
		Cart:           ledger,
		Invoices:       ledger,
		CheckoutSvc:    service.NewCheckoutService(ledger, ledger, settlement, log),
		SettlementSvc:  settlement,
		Notifier:       notifier,
		ReportingSvc:   service.NewReportingService(ledger, ledger, clk),
		RateLimitStore: memory.NewRateLimitStore(clk),
		Metrics:        m,
		Clock:          clk,
		Logger:         log,
	})
	gin.SetMode(gin.TestMode)
	return r, settlement
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func TestRouter_CartCheckoutFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	code, _ := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"id":1,"title":"Mug","price":"2.50","quantity":2}`)
	require.Equal(t, http.StatusOK, code)
	code, env := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"id":"2","title":"Poster","price":"0.01"}`)
	require.Equal(t, http.StatusOK, code)

	var cart struct {
		Items []domain.LineItem `json:"items"`
		Total string            `json:"total"`
		Count int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, "5.01", cart.Total)
	assert.Equal(t, 3, cart.Count)
	assert.Equal(t, domain.ProductID("2"), cart.Items[0].ID, "newest row first")

	code, env = do(t, r, http.MethodPost, "/api/v1/checkout", `{"strategy":"simulated","merchant":"Corner Shop"}`)
	require.Equal(t, http.StatusCreated, code, string(env.Data))

	var result domain.SettlementResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, domain.OutcomeOK, result.Outcome)
	assert.Equal(t, domain.InvoiceStatusPaid, result.Invoice.Status)
	assert.Regexp(t, `^sim_\d{13}_[0-9a-z]{6}$`, result.Invoice.TransactionHash)

	code, env = do(t, r, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)

	code, env = do(t, r, http.MethodGet, "/api/v1/invoices/"+result.Invoice.ID+"/result", "")
	require.Equal(t, http.StatusOK, code)
	var payload domain.SettlementPayload
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, result.Invoice.TransactionHash, payload.Proof)

	code, env = do(t, r, http.MethodGet, "/api/v1/notifications", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "success")

	code, env = do(t, r, http.MethodGet, "/api/v1/dashboard/stats", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"revenue":"5.01"`)
}

func TestRouter_CartKeepsValuesVerbatim(t *testing.T) {
	r, _ := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/cart/items", `{"id":"a&b","title":"John Hardy Women's Legends","price":"1"}`)
	require.Equal(t, http.StatusOK, code)

	var cart struct {
		Items []domain.LineItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, domain.ProductID("a&b"), cart.Items[0].ID)
	assert.Equal(t, "John Hardy Women's Legends", cart.Items[0].Title)

	code, env = do(t, r, http.MethodDelete, "/api/v1/cart/items/a&b", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func TestRouter_SettleTwice(t *testing.T) {
	r, _ := newTestRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/invoices", `{"merchant":"Kiosk","amount":"1.25"}`)
	require.Equal(t, http.StatusCreated, code)
	var inv domain.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	assert.Equal(t, domain.InvoiceStatusPending, inv.Status)

	code, _ = do(t, r, http.MethodPost, "/api/v1/invoices/"+inv.ID+"/settle", `{"strategy":"simulated"}`)
	require.Equal(t, http.StatusOK, code)

	code, env = do(t, r, http.MethodPost, "/api/v1/invoices/"+inv.ID+"/settle", `{"strategy":"simulated"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "INV_004", env.ErrorCode)
}

func TestRouter_SettleAsync(t *testing.T) {
	r, settlement := newTestRouter(t)

	_, env := do(t, r, http.MethodPost, "/api/v1/invoices", `{"merchant":"Kiosk","amount":"3"}`)
	var inv domain.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &inv))

	code, _ := do(t, r, http.MethodPost, "/api/v1/invoices/"+inv.ID+"/settle", `{"async":true}`)
	require.Equal(t, http.StatusAccepted, code)
	settlement.Wait()

	code, env = do(t, r, http.MethodGet, "/api/v1/invoices/"+inv.ID, "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &inv))
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
}

func TestRouter_ChainRoutesDisabledWithoutClient(t *testing.T) {
	r, _ := newTestRouter(t)
	code, _ := do(t, r, http.MethodGet, "/api/v1/chain/wallet-info", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_MetricsAndHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	code, _ := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `localpay_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestRouter_RateLimited(t *testing.T) {
	r, _ := newTestRouter(t)

	var code int
	for i := 0; i < 11; i++ {
		code, _ = do(t, r, http.MethodPost, "/api/v1/checkout", "")
	}
	assert.Equal(t, http.StatusTooManyRequests, code)
}
