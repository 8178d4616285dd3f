package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localpay-gateway/config"
	httpHandler "localpay-gateway/internal/adapter/http/handler"
	"localpay-gateway/internal/adapter/storage/memory"
	redisStorage "localpay-gateway/internal/adapter/storage/redis"
	"localpay-gateway/internal/adapter/wallet"
	"localpay-gateway/internal/app"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/internal/observability/metrics"
	"localpay-gateway/internal/service"
	"localpay-gateway/pkg/clock"
	"localpay-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Strs("mirrors", cfg.Mirror.Drivers).
		Msg("Starting LocalPay gateway")

	ctx := context.Background()
	var closers app.Closers
	defer closers.Close()

	clk := clock.Real{}
	ids := service.NewIDGenerator(clk, nil)

	// Redis is optional; without it every store is in-process.
	rdb, err := app.OpenRedis(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	var checkers []ports.HealthChecker
	var guard ports.SettlementGuard = memory.NewSettlementGuard(clk)
	var notifyStore ports.NotificationStore = memory.NewNotificationStore(clk)
	var rateLimits ports.RateLimitStore = memory.NewRateLimitStore(clk)
	if rdb != nil {
		closers.Add(func() { _ = rdb.Close() })
		guard = redisStorage.NewSettlementGuard(rdb)
		notifyStore = redisStorage.NewNotificationStore(rdb)
		rateLimits = redisStorage.NewRateLimitStore(rdb, clk)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
		log.Info().Msg("Redis connected")
	}

	// Ledger, restored from the configured state store
	stateStore, stateHealth, err := app.StateStore(cfg, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open state store")
	}
	checkers = append(checkers, stateHealth)
	ledger := service.RestoreLedger(ctx, stateStore, ids, clk, logger.Component(log, "ledger"))

	// Sales mirrors
	mirrors, mirrorHealth, err := app.Mirrors(ctx, cfg, &closers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize sales mirrors")
	}
	checkers = append(checkers, mirrorHealth...)

	var (
		recorder ports.SettlementRecorder = service.NopRecorder{}
		exporter httpHandler.MetricsExporter
	)
	if cfg.Metrics.Enabled {
		m := metrics.New()
		recorder, exporter = m, m
	}

	// Settlement strategies
	chainClient := app.ChainClient(cfg, log)
	checkers = append(checkers, chainClient)
	strategies := []ports.SettlementStrategy{
		service.NewSimulatedStrategy(clk, ids, cfg.Settlement.SimulatedMinDelay, cfg.Settlement.SimulatedMaxDelay),
		service.NewDeployStrategy(chainClient, cfg.Chain.PrecheckBalance, cfg.Chain.Timeout, logger.Component(log, "nft_deploy")),
		service.NewMintStrategy(chainClient, cfg.Chain.PrecheckBalance, cfg.Chain.Timeout, logger.Component(log, "nft_mint")),
	}
	if cfg.Wallet.BridgeURL != "" {
		bridge, err := wallet.NewBridgeClient(cfg.Wallet.BridgeURL, cfg.Wallet.AppSecretKey, nil, logger.Component(log, "wallet_bridge"))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize wallet bridge")
		}
		strategies = append(strategies, service.NewWalletStrategy(bridge, clk, cfg.Wallet.ValidityWindow))
		log.Info().Str("app_public_key", bridge.PublicKey()).Msg("Wallet settlement enabled")
	} else {
		log.Warn().Msg("wallet.bridge_url not set, wallet settlement disabled")
	}

	// Business services
	notifier := service.NewNotificationService(notifyStore, ids, clk, cfg.Notify.ToastTTL, cfg.Notify.ResultTTL, logger.Component(log, "notify"))
	mirror := service.NewMirrorDispatcher(mirrors, cfg.Mirror.Timeout, recorder, logger.Component(log, "mirror"))
	settlementSvc := service.NewSettlementService(service.SettlementDeps{
		Invoices:   ledger,
		Strategies: strategies,
		Notifier:   notifier,
		Mirror:     mirror,
		Guard:      guard,
		Recorder:   recorder,
		IDs:        ids,
		Clock:      clk,
		Logger:     logger.Component(log, "settlement"),
	})
	checkoutSvc := service.NewCheckoutService(ledger, ledger, settlementSvc, logger.Component(log, "checkout"))
	reportingSvc := service.NewReportingService(ledger, ledger, clk)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Cart:           ledger,
		Invoices:       ledger,
		CheckoutSvc:    checkoutSvc,
		SettlementSvc:  settlementSvc,
		Notifier:       notifier,
		ReportingSvc:   reportingSvc,
		Chain:          chainClient,
		RateLimitStore: rateLimits,
		Metrics:        exporter,
		HealthCheckers: checkers,
		Clock:          clk,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Let in-flight background work finish before closing stores.
	settlementSvc.Wait()
	mirror.Wait()

	log.Info().Msg("Server exited")
}
