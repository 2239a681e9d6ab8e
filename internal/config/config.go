package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// DefaultSeriesMax is the default cap on series expansion terms.
const DefaultSeriesMax = 250

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Numerics  NumericsConfig
}

// ServerConfig holds HTTP server configuration. CORSOrigins is a comma
// separated list; "*" admits any origin.
type ServerConfig struct {
	Port        string   `envconfig:"PORT" default:"8000"`
	Host        string   `envconfig:"HOST" default:"0.0.0.0"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration. Global switches from
// per-client buckets to a single bucket shared by every caller.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Global            bool `envconfig:"RATE_LIMIT_GLOBAL" default:"false"`
}

// NumericsConfig holds settings for the numerical engine. They are read
// once at startup and never change afterwards.
type NumericsConfig struct {
	SeriesMax int `envconfig:"SERIES_MAX" default:"250"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks values envconfig cannot express as tags.
func (c *Config) Validate() error {
	if c.Numerics.SeriesMax < 1 {
		return fmt.Errorf("invalid config: SERIES_MAX must be at least 1, got %d", c.Numerics.SeriesMax)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond < 1 {
		return fmt.Errorf("invalid config: RATE_LIMIT_RPS must be at least 1, got %d", c.RateLimit.RequestsPerSecond)
	}
	if c.RateLimit.Enabled && c.RateLimit.Burst < 1 {
		return fmt.Errorf("invalid config: RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimit.Burst)
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			Host:        "0.0.0.0",
			CORSOrigins: []string{"*"},
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Numerics: NumericsConfig{
			SeriesMax: DefaultSeriesMax,
		},
	}
}
