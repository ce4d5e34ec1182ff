// Package http provides an HTTP-based implementation of readweb.Fetcher
// for fetching content from static sites that don't require JavaScript rendering.
package http

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/readweb"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client to servers that vary content by
// browser.
const DefaultUserAgent = "Mozilla/5.0 (compatible; readweb/1.0)"

// Ensure Fetcher implements readweb.Fetcher at compile time.
var _ readweb.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	proxy          string
	userAgent      string
	ignoreCertErrs bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(addr string) Option {
	return func(f *Fetcher) {
		f.proxy = addr
	}
}

// WithUserAgent overrides the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithIgnoreCertErrors accepts invalid or self-signed TLS certificates.
func WithIgnoreCertErrors() Option {
	return func(f *Fetcher) {
		f.ignoreCertErrs = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if f.proxy != "" {
		proxyURL, err := url.Parse(f.proxy)
		if err != nil {
			return nil, readweb.Errorf(readweb.EINVALID, "invalid proxy url %q: %s", f.proxy, err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}
	if f.ignoreCertErrs {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f, nil
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", readweb.Errorf(readweb.EINVALID, "invalid url %q: %s", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "fetching %s: %s", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", readweb.Errorf(readweb.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "reading %s: %s", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
