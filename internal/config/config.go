package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. It is rejected in production.
const DefaultJWTSecret = "dev-secret-change-in-production"

var ErrDefaultSecretInProduction = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port           string        `env:"PORT" envDefault:"3001"`
	Env            string        `env:"ENV" envDefault:"development"`
	DatabaseDriver string        `env:"DATABASE_DRIVER" envDefault:"mysql"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/recruitme"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" envDefault:"true"`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`
	FrontendURL    string        `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	TrustProxy     bool          `env:"TRUST_PROXY" envDefault:"false"`
	AuthRateRPS    float64       `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	AuthRateBurst  int           `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load parses the environment into a Config. The caller is expected to have
// loaded any .env file beforehand.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.DatabaseDriver {
	case "mysql", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.JWTExpiry <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRY must be positive, got %s", cfg.JWTExpiry)
	}

	if cfg.JWTSecret == DefaultJWTSecret {
		if cfg.IsProduction() {
			return Config{}, ErrDefaultSecretInProduction
		}
		slog.Warn("JWT_SECRET is not set, tokens are signed with the built-in development secret")
	}

	return cfg, nil
}
