// Package app builds the adapters selected by configuration. Both the API
// server and localpayctl use it.
package app

import (
	"context"
	"fmt"

	"localpay-gateway/config"
	"localpay-gateway/internal/adapter/chain"
	"localpay-gateway/internal/adapter/messaging/kafka"
	"localpay-gateway/internal/adapter/storage/localfs"
	"localpay-gateway/internal/adapter/storage/postgres"
	redisStorage "localpay-gateway/internal/adapter/storage/redis"
	"localpay-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Closers runs cleanup functions in reverse order of registration.
type Closers []func()

func (c *Closers) Add(f func()) { *c = append(*c, f) }

func (c Closers) Close() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// OpenRedis connects when redis is enabled and returns nil otherwise.
func OpenRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*goredis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}
	return redisStorage.NewClient(ctx, cfg.Redis, log)
}

// StateStore returns the ledger store for storage.driver with its health check.
func StateStore(cfg *config.Config, rdb goredis.UniversalClient, log zerolog.Logger) (ports.StateStore, ports.HealthChecker, error) {
	switch cfg.Storage.Driver {
	case "file", "":
		return localfs.NewStateFile(cfg.Storage.Path, cfg.Storage.LegacyPath, log.With().Str("component", "state_file").Logger()),
			localfs.NewHealthCheck(cfg.Storage.Path), nil
	case "redis":
		if rdb == nil {
			return nil, nil, fmt.Errorf("storage.driver=redis requires a redis connection")
		}
		return redisStorage.NewStateStore(rdb), redisStorage.NewHealthCheck(rdb), nil
	}
	return nil, nil, fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
}

// ChainClient builds the chain service client.
func ChainClient(cfg *config.Config, log zerolog.Logger) *chain.Client {
	return chain.NewClient(cfg.Chain.BaseURL, cfg.Chain.Timeout, log.With().Str("component", "chain").Logger())
}

// Mirrors opens every configured sales mirror. Cleanup for opened mirrors is
// registered on closers even when a later mirror fails.
func Mirrors(ctx context.Context, cfg *config.Config, closers *Closers, log zerolog.Logger) ([]ports.SalesMirror, []ports.HealthChecker, error) {
	var (
		mirrors []ports.SalesMirror
		checks  []ports.HealthChecker
	)

	if cfg.Mirror.Enabled("postgres") {
		if cfg.Mirror.Migrate {
			if err := postgres.Migrate(cfg.Database.DSN(), log); err != nil {
				return nil, nil, fmt.Errorf("migrating sales mirror: %w", err)
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting sales mirror: %w", err)
		}
		closers.Add(pool.Close)
		mirrors = append(mirrors, postgres.NewSalesMirror(pool, cfg.Mirror.MerchantID))
		checks = append(checks, postgres.NewHealthCheck(pool))
	}

	if cfg.Mirror.Enabled("kafka") {
		pub, err := kafka.NewSettlementPublisher(cfg.Kafka, cfg.Mirror.MerchantID, log.With().Str("component", "kafka").Logger())
		if err != nil {
			return nil, nil, fmt.Errorf("creating settlement publisher: %w", err)
		}
		closers.Add(func() {
			if err := pub.Close(); err != nil {
				log.Warn().Err(err).Msg("closing settlement publisher")
			}
		})
		mirrors = append(mirrors, pub)
	}

	return mirrors, checks, nil
}
