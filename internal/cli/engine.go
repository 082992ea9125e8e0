package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amponce/va-design-system-monitor/internal/config"
	"github.com/amponce/va-design-system-monitor/internal/examples"
	"github.com/amponce/va-design-system-monitor/internal/fetch"
	"github.com/amponce/va-design-system-monitor/internal/registry"
)

// buildEngine wires the full engine from configuration. Every command
// goes through here so flags and environment behave identically
// everywhere.
func buildEngine() (*registry.Engine, error) {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return nil, err
	}
	logger := slog.Default()

	client := fetch.NewClient(nil, fetch.Options{
		Timeout:    cfg.RequestTimeout(),
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay(),
		Token:      cfg.Token,
		UserAgent:  "va-design-system-monitor/" + Version,
	}, logger)

	reg := registry.New(client, cfg.SourceURL, cfg.CacheTimeout(), nil, logger)

	ttl := cfg.CacheTimeout()
	if ttl <= 0 {
		ttl = time.Hour
	}
	official, err := examples.NewOfficialSource(nil, ttl, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create official example source: %w", err)
	}

	return registry.NewEngine(reg, examples.NewSynthesizer(logger), official, logger), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
