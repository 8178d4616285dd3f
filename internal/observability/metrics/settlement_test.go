package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"localpay-gateway/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSettlement(t *testing.T) {
	m := New()

	m.ObserveSettlement(domain.StrategySimulated, domain.OutcomeOK, 2*time.Second)
	m.ObserveSettlement(domain.StrategySimulated, domain.OutcomeOK, 3*time.Second)
	m.ObserveSettlement(domain.StrategyWallet, domain.OutcomeExpired, 5*time.Minute)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.settlements.WithLabelValues("simulated", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.settlements.WithLabelValues("wallet", "expired")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.settlementDuration))
}

func TestObserveMirror(t *testing.T) {
	m := New()

	m.ObserveMirror("postgres", nil)
	m.ObserveMirror("kafka", errors.New("broker down"))
	m.ObserveMirror("kafka", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.mirrorWrites.WithLabelValues("postgres", MirrorResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mirrorWrites.WithLabelValues("kafka", MirrorResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mirrorWrites.WithLabelValues("kafka", MirrorResultOK)))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("/api/v1/invoices/:id", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/invoices/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSettlement(domain.StrategyNFTMint, domain.OutcomeOK, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `localpay_settlements_total{outcome="ok",strategy="nft_mint"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
