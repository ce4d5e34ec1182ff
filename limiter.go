package readweb

import "context"

// DomainLimiter provides per-domain rate limiting for batch loading.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., an Article's Content).
	Convert(html string) (string, error)
}
