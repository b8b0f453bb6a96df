// Package config handles configuration loading for the tracking service.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the tracking service.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	// MockAuthEnabled bypasses the database and the MyTrips API, serving
	// a single fixed identity. Never enable in production.
	MockAuthEnabled bool `env:"MOCK_AUTH_ENABLED" envDefault:"false"`
	// DebugMode allows sensitive data (emails, upstream response bodies)
	// into the logs.
	DebugMode bool `env:"DEBUG_MODE" envDefault:"false"`

	DatabaseDSN     string        `env:"DATABASE_DSN"`
	JWTSecret       string        `env:"JWT_SECRET"`
	JWTAccessExpiry time.Duration `env:"JWT_ACCESS_EXPIRY" envDefault:"24h"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	MyTripsBaseURL string `env:"MYTRIPS_API_BASEURL"`
	LocAPIBaseURL  string `env:"LOC_API_BASEURL"`
	LocAPIToken    string `env:"LOC_API_TOKEN"`

	// RedisAddr is optional; when set, simulated positions are kept in
	// redis instead of process memory.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SwaggerHost string `env:"SWAGGER_HOST"`

	MockUsername  string `env:"MOCK_USERNAME" envDefault:"testuser"`
	MockPassword  string `env:"MOCK_PASSWORD" envDefault:"password123"`
	MockUserEmail string `env:"MOCK_USER_EMAIL" envDefault:"testuser@example.com"`
	MockUserID    string `env:"MOCK_USER_ID" envDefault:"mock-user-123"`
}

const devJWTSecret = "dev-secret-key-not-for-production-use"

var (
	ErrDatabaseDSNRequired = errors.New("DATABASE_DSN is required when MOCK_AUTH_ENABLED is false")
	ErrJWTSecretRequired   = errors.New("JWT_SECRET must be set to a secure random value of at least 32 bytes")
)

// Load reads configuration from environment variables and validates it.
// Outside mock mode a database DSN and a real JWT secret are mandatory.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.MockAuthEnabled && c.DatabaseDSN == "" {
		return ErrDatabaseDSNRequired
	}

	if len(c.JWTSecret) < 32 {
		if !c.MockAuthEnabled {
			return ErrJWTSecretRequired
		}
		// Mock deployments may run without a configured secret.
		c.JWTSecret = devJWTSecret
	}

	return nil
}
