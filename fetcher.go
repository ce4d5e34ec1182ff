package readweb

import "context"

// WaitUntil identifies how long a fetcher waits before considering a page
// rendered. The vocabulary mirrors browser lifecycle events.
type WaitUntil string

// Page-load wait conditions, from weakest to strongest.
const (
	// WaitCommit returns as soon as the navigation is committed.
	WaitCommit WaitUntil = "commit"

	// WaitDOMContentLoaded waits for the DOMContentLoaded event.
	WaitDOMContentLoaded WaitUntil = "domcontentloaded"

	// WaitLoad waits for the load event (all resources fetched).
	WaitLoad WaitUntil = "load"

	// WaitNetworkIdle waits until the network has been idle.
	WaitNetworkIdle WaitUntil = "networkidle"
)

// Valid reports whether w is a known wait condition.
func (w WaitUntil) Valid() bool {
	switch w {
	case WaitCommit, WaitDOMContentLoaded, WaitLoad, WaitNetworkIdle:
		return true
	}
	return false
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content. Navigation and timeout errors surface here, before any HTML is
// handed to an Extractor.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the configured wait
	// condition, and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
