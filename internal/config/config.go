// Package config loads monitor configuration from defaults, an
// optional YAML file, and environment variables.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Bounds for clamped numeric settings.
const (
	MinRequestTimeoutMs = 1000
	MaxRequestTimeoutMs = 300000
	MinRetries          = 0
	MaxRetries          = 5
	MinRetryDelayMs     = 1000
	MaxRetryDelayMs     = 10000
)

// DefaultSourceURL is the published declaration file of the component
// library.
const DefaultSourceURL = "https://raw.githubusercontent.com/department-of-veterans-affairs/component-library/main/packages/web-components/src/components.d.ts"

// Config is the engine's configuration surface.
type Config struct {
	SourceURL        string `yaml:"source_url" mapstructure:"source_url" validate:"required,url"`
	RequestTimeoutMs int    `yaml:"request_timeout_ms" mapstructure:"request_timeout_ms"`
	MaxRetries       int    `yaml:"max_retries" mapstructure:"max_retries"`
	RetryDelayMs     int    `yaml:"retry_delay_ms" mapstructure:"retry_delay_ms"`
	CacheTimeoutMs   int    `yaml:"cache_timeout_ms" mapstructure:"cache_timeout_ms"`
	Token            string `yaml:"token" mapstructure:"token"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		SourceURL:        DefaultSourceURL,
		RequestTimeoutMs: 30000,
		MaxRetries:       2,
		RetryDelayMs:     2000,
		CacheTimeoutMs:   int(time.Hour / time.Millisecond),
	}
}

// Validate checks structural validity (URL shape and scheme). Numeric
// ranges are not errors; they are clamped by Normalize.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// Normalize clamps numeric settings into their allowed ranges.
func (c *Config) Normalize() {
	c.RequestTimeoutMs = clamp(c.RequestTimeoutMs, MinRequestTimeoutMs, MaxRequestTimeoutMs)
	c.MaxRetries = clamp(c.MaxRetries, MinRetries, MaxRetries)
	c.RetryDelayMs = clamp(c.RetryDelayMs, MinRetryDelayMs, MaxRetryDelayMs)
	if c.CacheTimeoutMs < 0 {
		c.CacheTimeoutMs = 0
	}
}

// RequestTimeout returns the per-attempt fetch timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMs) * time.Millisecond
}

// RetryDelay returns the pause between fetch attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

// CacheTimeout returns the configured cache freshness window.
func (c *Config) CacheTimeout() time.Duration {
	return time.Duration(c.CacheTimeoutMs) * time.Millisecond
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
