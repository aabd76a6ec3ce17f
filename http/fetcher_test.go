package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
	smartyhttp "github.com/bayne/smarty-mcfly/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := smartyhttp.NewFetcher()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", string(body))
	})

	t.Run("follows redirects", func(t *testing.T) {
		t.Parallel()

		var target *httptest.Server
		target = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/old" {
				http.Redirect(w, r, target.URL+"/new", http.StatusMovedPermanently)
				return
			}
			_, _ = w.Write([]byte("redirected content"))
		}))
		defer target.Close()

		fetcher := smartyhttp.NewFetcher()

		body, err := fetcher.Fetch(context.Background(), target.URL+"/old")
		require.NoError(t, err)
		assert.Equal(t, "redirected content", string(body))
	})

	t.Run("classifies timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := smartyhttp.NewFetcher(smartyhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, smarty.ETIMEOUT, smarty.ErrorCode(err))
	})

	t.Run("classifies unreachable host as network error", func(t *testing.T) {
		t.Parallel()

		fetcher := smartyhttp.NewFetcher(smartyhttp.WithTimeout(time.Second))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
		assert.Equal(t, smarty.ENETWORK, smarty.ErrorCode(err))
	})

	t.Run("classifies non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := smartyhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, smarty.EHTTPSTATUS, smarty.ErrorCode(err))
		assert.Contains(t, smarty.ErrorMessage(err), "404")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := smartyhttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("rate limit delays successive requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := smartyhttp.NewFetcher(smartyhttp.WithRateLimit(20))

		start := time.Now()
		for range 3 {
			_, err := fetcher.Fetch(context.Background(), server.URL)
			require.NoError(t, err)
		}
		// 20 req/s with burst 1 means the 2nd and 3rd requests wait ~50ms each.
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})
}
