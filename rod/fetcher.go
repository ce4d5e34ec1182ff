// Package rod renders pages in headless Chrome before extraction.
// JavaScript-heavy sites serve skeleton HTML to plain HTTP clients; the
// browser executes scripts and hands back the hydrated document.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/readweb"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements readweb.Fetcher at compile time.
var _ readweb.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 60 * time.Second

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	waitUntil readweb.WaitUntil
	timeout   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithWaitUntil sets the page lifecycle event that completes navigation.
// Defaults to readweb.WaitDOMContentLoaded.
func WithWaitUntil(w readweb.WaitUntil) Option {
	return func(f *Fetcher) {
		f.waitUntil = w
	}
}

// WithFetchTimeout sets the per-fetch deadline. Defaults to 60 seconds.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a Fetcher on top of the given browser manager.
// Close must be called when the Fetcher is no longer needed; it shuts
// down the manager.
func NewFetcher(manager *BrowserManager, opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		manager:   manager,
		waitUntil: readweb.WaitDOMContentLoaded,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if !f.waitUntil.Valid() {
		return nil, readweb.Errorf(readweb.EINVALID, "invalid wait strategy %q", f.waitUntil)
	}
	return f, nil
}

// Fetch navigates to the URL, waits for the configured lifecycle event
// and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.manager.Closed() {
		return "", readweb.Errorf(readweb.EINVALID, "fetcher is closed")
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser := f.manager.Browser()
	if browser == nil {
		return "", readweb.Errorf(readweb.EINVALID, "fetcher is closed")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "opening page: %s", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	// The navigation waiter must be armed before Navigate or the event
	// can fire unobserved.
	var wait func()
	switch f.waitUntil {
	case readweb.WaitCommit:
		// Navigate alone resolves once the navigation is committed.
	case readweb.WaitLoad:
		wait = page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	case readweb.WaitNetworkIdle:
		wait = page.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	default:
		wait = page.WaitNavigation(proto.PageLifecycleEventNameDOMContentLoaded)
	}

	if err := page.Navigate(url); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "navigating to %s: %s", url, err)
	}
	if wait != nil {
		wait()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", readweb.Errorf(readweb.EUNAVAILABLE, "reading page html: %s", err)
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
