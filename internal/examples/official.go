package examples

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/maypok86/otter"

	"github.com/amponce/va-design-system-monitor/internal/types"
)

// Candidate documentation locations probed for official usage examples.
// The markdown source is tried first; the rendered page is the
// fallback.
const (
	docsMarkdownBase = "https://raw.githubusercontent.com/department-of-veterans-affairs/vets-design-system-documentation/main/src/_components"
	docsSiteBase     = "https://design.va.gov/components"
)

// politenessDelay spaces out auxiliary document probes so the
// documentation host is never hammered.
const politenessDelay = 250 * time.Millisecond

var fencedCodeRe = regexp.MustCompile("(?s)```(?:html|jsx)?\n(.*?)```")

// OfficialSource probes published documentation for a component's
// official examples. Probe results are cached with a TTL; raw page
// bodies are memoized in a small LRU so repeated probes within one
// process never refetch the same URL.
type OfficialSource struct {
	http     *http.Client
	cache    otter.Cache[string, []types.Example]
	pages    *lru.Cache[string, string]
	logger   *slog.Logger
	mdBase   string
	siteBase string
	delay    time.Duration
}

// NewOfficialSource creates an official-example prober whose cached
// results expire after ttl.
func NewOfficialSource(httpClient *http.Client, ttl time.Duration, logger *slog.Logger) (*OfficialSource, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := otter.MustBuilder[string, []types.Example](128).
		WithTTL(ttl).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build example cache: %w", err)
	}
	pages, err := lru.New[string, string](64)
	if err != nil {
		return nil, fmt.Errorf("failed to build page cache: %w", err)
	}
	return &OfficialSource{
		http:     httpClient,
		cache:    cache,
		pages:    pages,
		logger:   logger,
		mdBase:   docsMarkdownBase,
		siteBase: docsSiteBase,
		delay:    politenessDelay,
	}, nil
}

// Examples returns the official examples for a component, or found ==
// false when no documentation page yields any. Errors are reserved for
// cancelled contexts; an unreachable documentation host is treated as
// not found.
func (o *OfficialSource) Examples(ctx context.Context, record *types.ComponentRecord) ([]types.Example, bool, error) {
	slug := docSlug(record)
	if cached, ok := o.cache.Get(slug); ok {
		return cached, len(cached) > 0, nil
	}

	tag := elementTag(record)
	var found []types.Example
	for _, probe := range []struct {
		url     string
		extract func(body, tag string) []string
	}{
		{fmt.Sprintf("%s/%s.md", o.mdBase, slug), markdownSnippets},
		{fmt.Sprintf("%s/%s", o.siteBase, slug), htmlSnippets},
	} {
		select {
		case <-time.After(o.delay):
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}

		body, err := o.page(ctx, probe.url)
		if err != nil {
			o.logger.Debug("documentation probe missed", "url", probe.url, "error", err)
			continue
		}
		for i, code := range probe.extract(body, tag) {
			found = append(found, types.Example{
				Title:       fmt.Sprintf("Official Example %d", i+1),
				Description: fmt.Sprintf("From the %s documentation page", record.Name),
				Code:        strings.TrimSpace(code),
				Framework:   "html",
			})
		}
		if len(found) > 0 {
			break
		}
	}

	o.cache.Set(slug, found)
	return found, len(found) > 0, nil
}

func (o *OfficialSource) page(ctx context.Context, url string) (string, error) {
	if body, ok := o.pages.Get(url); ok {
		return body, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "va-design-system-monitor")

	resp, err := o.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	body := string(raw)
	o.pages.Add(url, body)
	return body, nil
}

// markdownSnippets extracts fenced code blocks mentioning the tag from
// a markdown documentation source.
func markdownSnippets(body, tag string) []string {
	var out []string
	for _, m := range fencedCodeRe.FindAllStringSubmatch(body, -1) {
		if strings.Contains(m[1], "<"+tag) {
			out = append(out, m[1])
		}
	}
	return out
}

// htmlSnippets extracts code blocks mentioning the tag from a rendered
// documentation page.
func htmlSnippets(body, tag string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	var out []string
	doc.Find("pre code").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if strings.Contains(text, "<"+tag) {
			out = append(out, text)
		}
	})
	return out
}

// docSlug derives the documentation page slug from a component's tag
// name, stripping the custom element prefix.
func docSlug(record *types.ComponentRecord) string {
	tag := elementTag(record)
	return strings.TrimPrefix(tag, "va-")
}

// Close releases the probe caches.
func (o *OfficialSource) Close() {
	o.cache.Close()
}
