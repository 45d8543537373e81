package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DB       DBConfig
	Security SecurityConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type DBConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `env:"DB_DRIVER, default=sqlite"`
	DSN    string `env:"DB_DSN,    default=data/gym.db"`
}

type SecurityConfig struct {
	BcryptCost      int           `env:"BCRYPT_COST,      default=12"`
	ConfirmationTTL time.Duration `env:"CONFIRMATION_TTL, default=5m"`
}

// MongoConfig points at the audit store. An empty URI disables auditing.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,      default=gym_audit"`
	// Workers is the number of background audit writers.
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves the configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if cfg.Security.ConfirmationTTL <= 0 {
		return nil, fmt.Errorf("CONFIRMATION_TTL must be positive, got %s", cfg.Security.ConfirmationTTL)
	}
	return &cfg, nil
}
