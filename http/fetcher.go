// Package http provides an HTTP-based implementation of smarty.HTTPFetcher
// for retrieving documentation pages from static sites.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Documentation pages can be large (javadoc.io, pkg.go.dev), so this is more
// generous than a typical API client timeout.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements smarty.HTTPFetcher at compile time.
var _ smarty.HTTPFetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies over HTTP. Redirects are followed and the
// timeout is bounded; failures are classified as ENETWORK, ETIMEOUT, or
// EHTTPSTATUS so callers can render actionable messages.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit bounds outgoing requests to n per second. Useful for the
// long-lived server process, where many learn calls may arrive back to back.
func WithRateLimit(n float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, classifyTransportErr(err, url)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, smarty.Errorf(smarty.EINTERNAL, "building request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportErr(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, smarty.Errorf(smarty.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportErr(err, url)
	}

	return body, nil
}

// classifyTransportErr maps transport-level failures to ETIMEOUT or ENETWORK.
func classifyTransportErr(err error, url string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return smarty.Errorf(smarty.ETIMEOUT, "timed out fetching %s: %v", url, err)
	}
	return smarty.Errorf(smarty.ENETWORK, "fetching %s: %v", url, err)
}
