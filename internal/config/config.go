// Package config provides configuration loading using koanf.
// Precedence is environment variables over compiled defaults.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/reuschj/metric-time/pkg/metrictime"
	"github.com/reuschj/metric-time/pkg/metrictime/ntpsource"
)

// Sentinel errors for configuration failures. Match with errors.Is().
var (
	// ErrRequired reports a key that must be set in this environment.
	ErrRequired = errors.New("required configuration key missing")

	// ErrInvalid reports a key whose value cannot be used.
	ErrInvalid = errors.New("invalid configuration value")
)

// Config holds all daemon configuration. Keys nest one level deep with
// single-word leaves so every one of them is reachable from an environment
// variable, e.g. CLOCK_KIND maps to clock.kind.
type Config struct {
	// Environment identifier: "local", "dev", "prod"
	Environment string `koanf:"environment"`

	Logging LoggingConfig `koanf:"logging"`
	Server  ServerConfig  `koanf:"server"`
	Clock   ClockConfig   `koanf:"clock"`
	NTP     NTPConfig     `koanf:"ntp"`
	OTEL    OTELConfig    `koanf:"otel"`
}

// LoggingConfig holds structured logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // "debug", "info", "warn", "error"
	Format string `koanf:"format"` // "json" or "text"
}

// ServerConfig holds the HTTP surface configuration.
type ServerConfig struct {
	Port int `koanf:"port"`
}

// ClockConfig holds the emitting clock configuration.
type ClockConfig struct {
	// Kind is the time base emitted values are converted to; any spelling
	// metrictime.ParseKind accepts.
	Kind string `koanf:"kind"`
	// Interval is the pause between ticks.
	Interval time.Duration `koanf:"interval"`
	// Limit caps the number of ticks; 0 means run until shutdown.
	Limit uint64 `koanf:"limit"`
}

// TimeKind parses the configured kind string.
func (c ClockConfig) TimeKind() (metrictime.Kind, error) {
	return metrictime.ParseKind(c.Kind)
}

// NTPConfig holds network time configuration. An empty server means the
// daemon runs off the system clock alone.
type NTPConfig struct {
	Server string        `koanf:"server"` // Required in production
	Resync time.Duration `koanf:"resync"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint string `koanf:"endpoint"` // Empty disables OTLP export
	Service  string `koanf:"service"`
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Environment: "local",

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Clock: ClockConfig{
			Kind:     "base24",
			Interval: time.Second,
		},
		NTP: NTPConfig{
			Resync: ntpsource.DefaultSyncInterval,
		},
		OTEL: OTELConfig{
			Service: "metrictimed",
		},
	}
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// Missing required keys and unusable values fail startup; optional keys
// fall back to defaults.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	// Start with compiled defaults
	cfg := defaults()

	// Load environment variables.
	// Prefix: none (we use full names like CLOCK_INTERVAL)
	// Delimiter: _ maps to . for nested config
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	// Unmarshal into config struct
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks value validity in every environment and key presence in
// the ones that demand it.
func validate(cfg *Config) error {
	if _, err := cfg.Clock.TimeKind(); err != nil {
		return fmt.Errorf("%w: clock.kind: %w", ErrInvalid, err)
	}
	if cfg.Clock.Interval <= 0 {
		return fmt.Errorf("%w: clock.interval must be positive, got %s", ErrInvalid, cfg.Clock.Interval)
	}

	// Production deployments must sync against network time.
	if cfg.IsProd() && cfg.NTP.Server == "" {
		return fmt.Errorf("%w: ntp.server", ErrRequired)
	}

	return nil
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}

// IsProd returns true if running in production environment.
func (c *Config) IsProd() bool {
	return c.Environment == "prod"
}
