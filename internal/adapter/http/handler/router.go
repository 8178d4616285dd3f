package handler

import (
	"net/http"

	"localpay-gateway/internal/adapter/http/middleware"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsExporter records per-request metrics and serves the scrape endpoint.
type MetricsExporter interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Cart           ports.CartAggregator
	Invoices       ports.InvoiceStore
	CheckoutSvc    ports.CheckoutService
	SettlementSvc  ports.SettlementService
	Notifier       ports.NotificationChannel
	ReportingSvc   ports.ReportingService
	Chain          ports.ChainClient    // nil = chain passthrough disabled
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	Metrics        MetricsExporter      // nil = /metrics disabled
	HealthCheckers []ports.HealthChecker
	Clock          clock.Clock
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	if deps.Clock == nil {
		deps.Clock = clock.Real{}
	}

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Clock, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	cartHandler := NewCartHandler(deps.Cart)
	cart := v1.Group("/cart", rl(middleware.GroupCart))
	{
		cart.GET("", cartHandler.Get)
		cart.DELETE("", cartHandler.Clear)
		cart.POST("/items", cartHandler.AddItem)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	checkoutHandler := NewCheckoutHandler(deps.CheckoutSvc)
	v1.POST("/checkout", rl(middleware.GroupSettlement), checkoutHandler.Checkout)

	invoiceHandler := NewInvoiceHandler(deps.Invoices, deps.SettlementSvc, deps.Notifier)
	invoices := v1.Group("/invoices")
	{
		invoices.POST("", rl(middleware.GroupInvoices), invoiceHandler.Create)
		invoices.GET("", rl(middleware.GroupRead), invoiceHandler.List)
		invoices.GET("/:id", rl(middleware.GroupRead), invoiceHandler.Get)
		invoices.POST("/:id/settle", rl(middleware.GroupSettlement), invoiceHandler.Settle)
		invoices.GET("/:id/result", rl(middleware.GroupRead), invoiceHandler.Result)
	}

	notificationHandler := NewNotificationHandler(deps.Notifier)
	v1.GET("/notifications", rl(middleware.GroupRead), notificationHandler.Recent)

	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)
	v1.GET("/dashboard/stats", rl(middleware.GroupRead), dashboardHandler.GetStats)

	if deps.Chain != nil {
		chainHandler := NewChainHandler(deps.Chain)
		chain := v1.Group("/chain", rl(middleware.GroupChain))
		{
			chain.GET("/wallet-info", chainHandler.WalletInfo)
			chain.GET("/collection-info", chainHandler.CollectionInfo)
		}
	}

	return r
}
