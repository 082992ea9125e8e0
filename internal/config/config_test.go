package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, DefaultSourceURL, cfg.SourceURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay())
	assert.Equal(t, time.Hour, cfg.CacheTimeout())
	require.NoError(t, cfg.Validate())
}

func TestNormalizeClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, *Config)
	}{
		{"timeout below floor", func(c *Config) { c.RequestTimeoutMs = 10 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MinRequestTimeoutMs, c.RequestTimeoutMs)
		}},
		{"timeout above ceiling", func(c *Config) { c.RequestTimeoutMs = 900000 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MaxRequestTimeoutMs, c.RequestTimeoutMs)
		}},
		{"negative retries", func(c *Config) { c.MaxRetries = -3 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MinRetries, c.MaxRetries)
		}},
		{"excessive retries", func(c *Config) { c.MaxRetries = 50 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MaxRetries, c.MaxRetries)
		}},
		{"retry delay below floor", func(c *Config) { c.RetryDelayMs = 1 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MinRetryDelayMs, c.RetryDelayMs)
		}},
		{"retry delay above ceiling", func(c *Config) { c.RetryDelayMs = 60000 }, func(t *testing.T, c *Config) {
			assert.Equal(t, MaxRetryDelayMs, c.RetryDelayMs)
		}},
		{"negative cache timeout", func(c *Config) { c.CacheTimeoutMs = -1 }, func(t *testing.T, c *Config) {
			assert.Equal(t, 0, c.CacheTimeoutMs)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			cfg.Normalize()
			tt.check(t, cfg)
		})
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.SourceURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg.SourceURL = ""
	assert.Error(t, cfg.Validate())
}

func TestLoader(t *testing.T) {
	t.Run("explicitly named missing file errors", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load()
		assert.Error(t, err)
	})

	t.Run("config file values applied and clamped", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"source_url: https://example.test/components.d.ts\n"+
				"request_timeout_ms: 10\n"+
				"max_retries: 99\n"), 0o644))

		cfg, err := NewLoader(path).Load()
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/components.d.ts", cfg.SourceURL)
		assert.Equal(t, MinRequestTimeoutMs, cfg.RequestTimeoutMs)
		assert.Equal(t, MaxRetries, cfg.MaxRetries)
	})

	t.Run("non-http source rejected", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"source_url: ftp://example.test/components.d.ts\n"), 0o644))

		_, err := NewLoader(path).Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http")
	})

	t.Run("environment token picked up", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")

		cfg, err := NewLoader("").Load()
		require.NoError(t, err)
		assert.Equal(t, "env-token", cfg.Token)
	})
}
