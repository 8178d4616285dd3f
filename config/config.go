package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Mirror     MirrorConfig     `mapstructure:"mirror"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Notify     NotifyConfig     `mapstructure:"notify"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StorageConfig selects the durable store for the invoice ledger and cart.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"` // file, redis
	Path       string `mapstructure:"path"`
	LegacyPath string `mapstructure:"legacy_path"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MirrorConfig controls best-effort replication of settled invoices.
type MirrorConfig struct {
	Drivers    []string      `mapstructure:"drivers"` // postgres, kafka
	Timeout    time.Duration `mapstructure:"timeout"`
	MerchantID string        `mapstructure:"merchant_id"`
	Migrate    bool          `mapstructure:"migrate"`
}

// Enabled reports whether the named mirror driver is configured.
func (m MirrorConfig) Enabled(driver string) bool {
	for _, d := range m.Drivers {
		if strings.EqualFold(strings.TrimSpace(d), driver) {
			return true
		}
	}
	return false
}

type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ChainConfig points at the companion NFT chain service.
type ChainConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PrecheckBalance bool          `mapstructure:"precheck_balance"`
}

// WalletConfig configures the wallet-connect bridge.
type WalletConfig struct {
	BridgeURL      string        `mapstructure:"bridge_url"`
	AppSecretKey   string        `mapstructure:"app_secret_key"` // 32-byte hex NaCl secret key
	ValidityWindow time.Duration `mapstructure:"validity_window"`
}

type SettlementConfig struct {
	SimulatedMinDelay time.Duration `mapstructure:"simulated_min_delay"`
	SimulatedMaxDelay time.Duration `mapstructure:"simulated_max_delay"`
}

type NotifyConfig struct {
	ToastTTL  time.Duration `mapstructure:"toast_ttl"`
	ResultTTL time.Duration `mapstructure:"result_ttl"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// A .env file in the working directory is loaded into the process environment first.
// Environment variables override file values. Prefix: LPAY_.
// Nested keys use underscore: LPAY_CHAIN_BASE_URL, LPAY_STORAGE_DRIVER, etc.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "data/localpay_state_v1.json")
	v.SetDefault("storage.legacy_path", "data/localpay_invoices.json")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "localpay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("mirror.drivers", []string{})
	v.SetDefault("mirror.timeout", "10s")
	v.SetDefault("mirror.merchant_id", "m_001")
	v.SetDefault("mirror.migrate", true)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "localpay.invoice.settled")
	v.SetDefault("kafka.write_timeout", "5s")
	v.SetDefault("chain.base_url", "http://localhost:3000")
	v.SetDefault("chain.timeout", "30s")
	v.SetDefault("chain.precheck_balance", true)
	v.SetDefault("wallet.bridge_url", "")
	v.SetDefault("wallet.app_secret_key", "")
	v.SetDefault("wallet.validity_window", "300s")
	v.SetDefault("settlement.simulated_min_delay", "1s")
	v.SetDefault("settlement.simulated_max_delay", "3s")
	v.SetDefault("notify.toast_ttl", "3s")
	v.SetDefault("notify.result_ttl", "10m")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: LPAY_CHAIN_BASE_URL -> chain.base_url
	v.SetEnvPrefix("LPAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "file":
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the file driver")
		}
	case "redis":
		if !c.Redis.Enabled {
			return fmt.Errorf("storage.driver=redis requires redis.enabled")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Settlement.SimulatedMinDelay < 0 || c.Settlement.SimulatedMaxDelay < c.Settlement.SimulatedMinDelay {
		return fmt.Errorf("settlement delay window is invalid: min=%s max=%s",
			c.Settlement.SimulatedMinDelay, c.Settlement.SimulatedMaxDelay)
	}
	if c.Wallet.ValidityWindow <= 0 {
		return fmt.Errorf("wallet.validity_window must be positive")
	}
	return nil
}
