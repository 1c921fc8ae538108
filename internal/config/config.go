// Package config loads server configuration from environment variables
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/collectabot/collect-api/internal/errors"
)

// Config holds everything the server process needs
type Config struct {
	// HTTPAddress is the listen address for the API server
	HTTPAddress string `env:"HTTP_ADDRESS" envDefault:":8080"`

	// RedisAddress is the Redis endpoint for persistence
	RedisAddress string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// RedisPassword is optional Redis auth
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database
	RedisDB int `env:"REDIS_DB" envDefault:"0"`

	// GatewayURL is the chat gateway base URL; empty means dry-run logging
	GatewayURL string `env:"GATEWAY_URL"`

	// DespawnWindow is how long a spawn stays claimable
	DespawnWindow time.Duration `env:"DESPAWN_WINDOW" envDefault:"10m"`

	// CatalogRefreshInterval is how often the catalog snapshot reloads
	CatalogRefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"5m"`

	// VideoVenueChatID is the one chat where the video tier may spawn
	VideoVenueChatID string `env:"VIDEO_VENUE_CHAT_ID"`

	// ShutdownTimeout bounds graceful drain on SIGINT/SIGTERM
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load parses the configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.HTTPAddress == "" {
		vb.RequiredField("HTTPAddress")
	}
	if c.RedisAddress == "" {
		vb.RequiredField("RedisAddress")
	}
	if c.DespawnWindow <= 0 {
		vb.InvalidField("DespawnWindow", "must be positive")
	}
	if c.CatalogRefreshInterval <= 0 {
		vb.InvalidField("CatalogRefreshInterval", "must be positive")
	}

	return vb.Build()
}
