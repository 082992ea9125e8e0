// Package fetch retrieves the component declaration document from its
// published raw-file URL with bounded retries and rate-limit detection.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/amponce/va-design-system-monitor/internal/vaerrors"
)

// minDocumentLength guards against truncated bodies and silent
// redirects to HTML error pages: the real declaration file is always
// far larger than this.
const minDocumentLength = 1000

// Options configures a Client.
type Options struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	Token      string // optional bearer credential for higher rate limits
	UserAgent  string
}

// Client fetches documents over HTTP.
type Client struct {
	http   *http.Client
	opts   Options
	logger *slog.Logger
}

// NewClient creates a fetch client. A nil httpClient uses a default
// client; per-request deadlines come from Options.Timeout, not the
// http.Client, so the timeout can race each attempt individually.
func NewClient(httpClient *http.Client, opts Options, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "va-design-system-monitor"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{http: httpClient, opts: opts, logger: logger}
}

// FetchDocument retrieves the raw document at url. It makes up to
// MaxRetries+1 attempts, sleeping RetryDelay between them. A rate-limit
// response short-circuits: retrying cannot succeed before the limit
// resets, so the distinguished error surfaces immediately.
func (c *Client) FetchDocument(ctx context.Context, url string) (string, error) {
	var lastErr error

	attempts := c.opts.MaxRetries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := c.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		if vaerrors.IsRateLimit(err) {
			return "", err
		}
		lastErr = err
		c.logger.Warn("fetch attempt failed",
			"attempt", attempt, "max_attempts", attempts, "error", err)

		if attempt < attempts {
			select {
			case <-time.After(c.opts.RetryDelay):
			case <-ctx.Done():
				return "", vaerrors.Wrap(vaerrors.CodeTimeout, "fetch cancelled", ctx.Err())
			}
		}
	}
	return "", vaerrors.Wrap(vaerrors.CodeNetwork,
		fmt.Sprintf("failed to fetch document after %d attempts", attempts), lastErr)
}

func (c *Client) attempt(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", vaerrors.Wrap(vaerrors.CodeInvalidInput, "invalid document URL", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", vaerrors.Wrap(vaerrors.CodeTimeout,
				fmt.Sprintf("request exceeded %s", c.opts.Timeout), err)
		}
		return "", vaerrors.Wrap(vaerrors.CodeNetwork, "request failed", err)
	}
	defer resp.Body.Close()

	if rl := rateLimitFrom(resp, c.opts.Token != ""); rl != nil {
		return "", rl
	}
	if resp.StatusCode != http.StatusOK {
		return "", vaerrors.New(vaerrors.CodeNetwork,
			fmt.Sprintf("unexpected status %d from document source", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", vaerrors.Wrap(vaerrors.CodeNetwork, "failed to read response body", err)
	}
	if len(body) < minDocumentLength {
		return "", vaerrors.New(vaerrors.CodeEmptyDocument,
			fmt.Sprintf("response body too short (%d bytes), likely truncated or redirected", len(body)))
	}
	return string(body), nil
}

// rateLimitFrom detects the source's rate-limit signal: a forbidden
// status paired with a zero remaining-quota header.
func rateLimitFrom(resp *http.Response, authenticated bool) *vaerrors.RateLimitError {
	if resp.StatusCode != http.StatusForbidden {
		return nil
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		return nil
	}
	rl := &vaerrors.RateLimitError{Authenticated: authenticated}
	if raw := resp.Header.Get("X-RateLimit-Reset"); raw != "" {
		if epoch, err := strconv.ParseInt(raw, 10, 64); err == nil {
			rl.ResetAt = time.Unix(epoch, 0)
		}
	}
	return rl
}
