package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amponce/va-design-system-monitor/internal/vaerrors"
)

var validBody = strings.Repeat("interface VaButton { text?: string; }\n", 40)

func testClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = 2 * time.Second
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = time.Millisecond
	}
	return NewClient(nil, opts, nil)
}

func TestFetchDocument(t *testing.T) {
	t.Parallel()

	t.Run("success returns body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(validBody))
		}))
		defer server.Close()

		body, err := testClient(Options{}).FetchDocument(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, validBody, body)
	})

	t.Run("sends user agent and authorization", func(t *testing.T) {
		var gotUA, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(validBody))
		}))
		defer server.Close()

		client := testClient(Options{Token: "secret", UserAgent: "test-agent/1.0"})
		_, err := client.FetchDocument(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent/1.0", gotUA)
		assert.Equal(t, "Bearer secret", gotAuth)
	})

	t.Run("retries transient failures then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(validBody))
		}))
		defer server.Close()

		client := testClient(Options{MaxRetries: 2})
		body, err := client.FetchDocument(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, validBody, body)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("surfaces last error after exhausting retries", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := testClient(Options{MaxRetries: 2})
		_, err := client.FetchDocument(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.Equal(t, vaerrors.CodeNetwork, vaerrors.CodeOf(err))
	})

	t.Run("rate limit short-circuits retries", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "1700000000")
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := testClient(Options{MaxRetries: 5})
		_, err := client.FetchDocument(context.Background(), server.URL)
		require.Error(t, err)
		assert.True(t, vaerrors.IsRateLimit(err))
		assert.Equal(t, int32(1), calls.Load(), "rate limit must not be retried")

		var rl *vaerrors.RateLimitError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, time.Unix(1700000000, 0), rl.ResetAt)
		assert.False(t, rl.Authenticated)
	})

	t.Run("forbidden without zero quota is an ordinary failure", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := testClient(Options{MaxRetries: 1})
		_, err := client.FetchDocument(context.Background(), server.URL)
		require.Error(t, err)
		assert.False(t, vaerrors.IsRateLimit(err))
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("short body treated as invalid response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>moved</html>"))
		}))
		defer server.Close()

		_, err := testClient(Options{}).FetchDocument(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
	})

	t.Run("timeout aborts the attempt", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			w.Write([]byte(validBody))
		}))
		defer server.Close()

		client := testClient(Options{Timeout: 20 * time.Millisecond})
		start := time.Now()
		_, err := client.FetchDocument(context.Background(), server.URL)
		require.Error(t, err)
		assert.Less(t, time.Since(start), 250*time.Millisecond)
	})
}
