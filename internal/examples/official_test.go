package examples

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const buttonMarkdown = "# Button\n\n```html\n<va-button text=\"Edit\"></va-button>\n```\n\n```html\n<va-button secondary text=\"Cancel\"></va-button>\n```\n"

const buttonHTML = `<html><body>
<pre><code>&lt;va-button text="Edit"&gt;&lt;/va-button&gt;</code></pre>
</body></html>`

func testOfficialSource(t *testing.T, handler http.Handler) (*OfficialSource, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	source, err := NewOfficialSource(server.Client(), time.Minute, nil)
	require.NoError(t, err)
	source.mdBase = server.URL + "/md"
	source.siteBase = server.URL + "/site"
	source.delay = time.Millisecond
	return source, server
}

func TestOfficialExamples(t *testing.T) {
	t.Parallel()

	t.Run("markdown snippets extracted", func(t *testing.T) {
		source, _ := testOfficialSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/md/button.md" {
				w.Write([]byte(buttonMarkdown))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))

		examples, found, err := source.Examples(context.Background(), component("va-button"))
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, examples, 2)
		assert.Contains(t, examples[0].Code, "<va-button")
		assert.Equal(t, "Official Example 1", examples[0].Title)
	})

	t.Run("falls back to rendered page", func(t *testing.T) {
		source, _ := testOfficialSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/site/button" {
				w.Write([]byte(buttonHTML))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))

		examples, found, err := source.Examples(context.Background(), component("va-button"))
		require.NoError(t, err)
		require.True(t, found)
		require.Len(t, examples, 1)
		assert.Contains(t, examples[0].Code, `<va-button text="Edit">`)
	})

	t.Run("unreachable docs mean not found, not error", func(t *testing.T) {
		source, _ := testOfficialSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		examples, found, err := source.Examples(context.Background(), component("va-ghost"))
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, examples)
	})

	t.Run("probe results cached", func(t *testing.T) {
		var calls atomic.Int32
		source, _ := testOfficialSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Write([]byte(buttonMarkdown))
		}))

		_, _, err := source.Examples(context.Background(), component("va-button"))
		require.NoError(t, err)
		first := calls.Load()

		// The otter cache is asynchronous about publication; give it a
		// moment before relying on the hit path.
		time.Sleep(50 * time.Millisecond)

		_, _, err = source.Examples(context.Background(), component("va-button"))
		require.NoError(t, err)
		assert.LessOrEqual(t, calls.Load(), first, "second lookup should not refetch")
	})

	t.Run("cancelled context surfaces", func(t *testing.T) {
		source, _ := testOfficialSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(buttonMarkdown))
		}))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := source.Examples(ctx, component("va-button"))
		require.Error(t, err)
	})
}
