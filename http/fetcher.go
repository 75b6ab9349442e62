// Package http provides an HTTP-based implementation of symaudit.Fetcher for
// retrieving API index pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/symaudit"
)

// DefaultFetchTimeout is the default timeout for a catalog request.
// Index pages for a whole library are large, so this is generous.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies the auditor to documentation servers.
const DefaultUserAgent = "symaudit/1.0"

// Ensure Fetcher implements symaudit.Fetcher at compile time.
var _ symaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bodies with a single GET request per call.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
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

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL. Any failure is an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", symaudit.Errorf(symaudit.EFETCH, "invalid request for %s: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", symaudit.Errorf(symaudit.EFETCH, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", symaudit.Errorf(symaudit.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", symaudit.Errorf(symaudit.EFETCH, "read body of %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
