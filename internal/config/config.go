package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the cookbook service.
// Environment variables are parsed from the COOKBOOK_ prefix, e.g.
// COOKBOOK_HTTP_PORT, COOKBOOK_KV_DRIVER.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// KV driver selects the backing store: sqlite (default), postgres,
	// or memory (ephemeral, for development).
	KVDriver string `envconfig:"KV_DRIVER" default:"sqlite"`

	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/cookbook.db"`

	// PostgresDSN is required when KV_DRIVER=postgres.
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`
}

// ResolveDefaults validates the driver choice and its required settings.
func (c *Config) ResolveDefaults() error {
	switch c.KVDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("COOKBOOK_SQLITE_PATH is required when KV_DRIVER=sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("COOKBOOK_POSTGRES_DSN is required when KV_DRIVER=postgres")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported KV_DRIVER: %s", c.KVDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("COOKBOOK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
