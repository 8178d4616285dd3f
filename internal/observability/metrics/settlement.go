// Package metrics exposes settlement and HTTP metrics to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	MirrorResultOK    = "ok"
	MirrorResultError = "error"
)

// Metrics implements ports.SettlementRecorder.
type Metrics struct {
	registry *prometheus.Registry

	settlements        *prometheus.CounterVec
	settlementDuration *prometheus.HistogramVec
	mirrorWrites       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

var _ ports.SettlementRecorder = (*Metrics)(nil)

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localpay_settlements_total",
			Help: "Settlement attempts by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		settlementDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localpay_settlement_duration_seconds",
			Help:    "Time from settlement start to a terminal outcome.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 10, 30, 60, 120, 300},
		}, []string{"strategy"}),
		mirrorWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localpay_sales_mirror_writes_total",
			Help: "Sales mirror writes by mirror and result.",
		}, []string{"mirror", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "localpay_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "localpay_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.settlements,
		m.settlementDuration,
		m.mirrorWrites,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) ObserveSettlement(strategy domain.Strategy, outcome domain.OutcomeKind, elapsed time.Duration) {
	m.settlements.WithLabelValues(string(strategy), string(outcome)).Inc()
	m.settlementDuration.WithLabelValues(string(strategy)).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveMirror(mirror string, err error) {
	result := MirrorResultOK
	if err != nil {
		result = MirrorResultError
	}
	m.mirrorWrites.WithLabelValues(mirror, result).Inc()
}

// ObserveRequest records one served HTTP request. route is the matched
// route template, not the raw path.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
