// Package registry owns the component table: fetching, parsing,
// classification, and the availability-biased cache that prefers stale
// data over a hard failure.
package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amponce/va-design-system-monitor/internal/classify"
	"github.com/amponce/va-design-system-monitor/internal/parser"
	"github.com/amponce/va-design-system-monitor/internal/types"
	"github.com/amponce/va-design-system-monitor/internal/vaerrors"
)

// HardCeiling is the absolute maximum age of cached data. Beyond it a
// stale table is never returned, even as a degrade fallback, and the
// configured freshness window is clamped to it.
const HardCeiling = 24 * time.Hour

// Clock supplies the current time. Injectable so tests control
// freshness deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DocumentFetcher retrieves the raw declaration document.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) (string, error)
}

// Registry caches the parsed component table.
type Registry struct {
	fetcher   DocumentFetcher
	sourceURL string
	extractor *parser.Extractor
	clock     Clock
	freshFor  time.Duration
	logger    *slog.Logger

	mu        sync.Mutex
	table     types.ComponentTable
	fetchedAt time.Time
}

// New creates a registry. freshFor is the configured cache timeout; the
// effective freshness window is min(freshFor, HardCeiling). A nil clock
// uses the system clock.
func New(fetcher DocumentFetcher, sourceURL string, freshFor time.Duration, clock Clock, logger *slog.Logger) *Registry {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if freshFor > HardCeiling {
		freshFor = HardCeiling
	}
	return &Registry{
		fetcher:   fetcher,
		sourceURL: sourceURL,
		extractor: parser.NewExtractor(),
		clock:     clock,
		freshFor:  freshFor,
		logger:    logger,
	}
}

// Components returns the component table, refreshing it when forced or
// when the cached table has aged past the freshness window. A failed
// refresh degrades to the previous table as long as it is younger than
// the hard ceiling; only an absolutely expired or absent table lets the
// fetch error surface. Refreshes are serialized per instance.
func (r *Registry) Components(ctx context.Context, forceRefresh bool) (types.ComponentTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	age := r.clock.Now().Sub(r.fetchedAt)
	if !forceRefresh && len(r.table) > 0 && age < r.freshFor {
		return r.table, nil
	}

	table, err := r.refresh(ctx)
	if err != nil {
		if len(r.table) > 0 && age < HardCeiling {
			r.logger.Warn("refresh failed, serving stale component table",
				"age", age.Round(time.Second), "error", err)
			return r.table, nil
		}
		return nil, err
	}

	r.table = table
	r.fetchedAt = r.clock.Now()
	return r.table, nil
}

// LastUpdated reports when the current table was fetched.
func (r *Registry) LastUpdated() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetchedAt
}

// refresh fetches and parses a complete new table. The table is built
// fully before publication; callers never observe a partial table.
func (r *Registry) refresh(ctx context.Context) (types.ComponentTable, error) {
	raw, err := r.fetcher.FetchDocument(ctx, r.sourceURL)
	if err != nil {
		return nil, err
	}

	table := make(types.ComponentTable)
	for _, rc := range r.extractor.ExtractComponents(raw) {
		record := &types.ComponentRecord{
			Name:             rc.Name,
			InterfaceName:    rc.InterfaceName,
			TagName:          rc.TagName,
			MaturityCategory: types.MaturityCategory(rc.MaturityCategory),
			MaturityLevel:    types.MaturityLevel(rc.MaturityLevel),
			GuidanceHref:     rc.GuidanceHref,
			Translations:     rc.Translations,
			Properties:       parser.ParseProperties(rc.Body),
		}
		record.Status, record.Recommendation = classify.Classify(record.MaturityCategory, record.MaturityLevel)
		table[record.InterfaceName] = record
	}

	if len(table) == 0 {
		return nil, vaerrors.New(vaerrors.CodeNoComponents,
			"document parsed but produced zero components")
	}
	r.logger.Info("component table refreshed", "components", len(table))
	return table, nil
}
