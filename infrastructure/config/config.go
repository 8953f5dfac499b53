// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Cache backend selection.
const (
	CacheBackendNone     = "none"
	CacheBackendMemory   = "memory"
	CacheBackendDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":8080"`
	Environment   string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Externally reachable base URL, used for image references and the
	// share embed
	AppURL string `env:"APP_URL" envDefault:"http://localhost:8080"`

	// Upstream data sources
	AirstackAPIURL   string        `env:"AIRSTACK_API_URL" envDefault:"https://api.airstack.xyz/gql"`
	AirstackAPIKey   string        `env:"AIRSTACK_API_KEY"`
	FnameRegistryURL string        `env:"FNAME_REGISTRY_URL" envDefault:"https://fnames.farcaster.xyz"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`

	// Optional profile cache
	CacheBackend  string        `env:"CACHE_BACKEND" envDefault:"none"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	AWSRegion     string        `env:"AWS_REGION" envDefault:"us-west-2"`
	DynamoDBTable string        `env:"CACHE_TABLE_NAME" envDefault:"anniversary-profiles"`

	// Feature flags
	EnableMetrics bool `env:"ENABLE_METRICS" envDefault:"true"`
	EnableCORS    bool `env:"ENABLE_CORS" envDefault:"true"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendDynamoDB:
	default:
		return fmt.Errorf("unknown CACHE_BACKEND %q", c.CacheBackend)
	}

	if c.Environment == "production" {
		if c.AirstackAPIKey == "" {
			return fmt.Errorf("AIRSTACK_API_KEY is required in production")
		}
		if c.CacheBackend == CacheBackendDynamoDB && c.DynamoDBTable == "" {
			return fmt.Errorf("CACHE_TABLE_NAME is required with the dynamodb cache")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
