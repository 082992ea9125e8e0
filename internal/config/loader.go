package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	configFile string
}

// NewLoader creates a configuration loader. configFile may be empty, in
// which case only default search paths are consulted.
func NewLoader(configFile string) Loader {
	return &loader{configFile: configFile}
}

// Load loads configuration with the following priority (highest to
// lowest):
//  1. Environment variables (VADS_*)
//  2. Config file (.vads.yaml)
//  3. Default values
//
// A .env file in the working directory is read first so the access
// token can live there during development.
func (l *loader) Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".vads")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("VADS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	defaults := Default()
	v.SetDefault("source_url", defaults.SourceURL)
	v.SetDefault("request_timeout_ms", defaults.RequestTimeoutMs)
	v.SetDefault("max_retries", defaults.MaxRetries)
	v.SetDefault("retry_delay_ms", defaults.RetryDelayMs)
	v.SetDefault("cache_timeout_ms", defaults.CacheTimeoutMs)
	v.SetDefault("token", "")

	// A missing default config file is fine; any other read failure
	// (including an explicitly named file that does not exist) is not.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The conventional token variable wins over the config file when
	// nothing was set through the VADS prefix.
	if cfg.Token == "" {
		cfg.Token = os.Getenv("GITHUB_TOKEN")
	}

	if !strings.HasPrefix(cfg.SourceURL, "http://") && !strings.HasPrefix(cfg.SourceURL, "https://") {
		return nil, fmt.Errorf("source_url must be http or https, got %q", cfg.SourceURL)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}
