package readweb

import "unicode/utf8"

// Article holds the readable content extracted from a rendered page.
// An Article is immutable once produced; callers own the value.
type Article struct {
	// Title is the article title.
	Title string `json:"title"`

	// Byline is the author metadata, empty if absent.
	Byline string `json:"byline,omitempty"`

	// Content is the processed article content as an HTML string.
	Content string `json:"content"`

	// TextContent is the article text with all HTML tags removed.
	// Block-level boundaries are rendered as line breaks.
	TextContent string `json:"textContent"`

	// Excerpt is the article description, or a short excerpt derived
	// from the content.
	Excerpt string `json:"excerpt,omitempty"`

	// SiteName is the name of the publishing site, empty if absent.
	SiteName string `json:"siteName,omitempty"`

	// Language is a language code from the document, empty if absent.
	Language string `json:"lang,omitempty"`

	// Direction is the content direction ("ltr" or "rtl"), empty if absent.
	Direction string `json:"dir,omitempty"`

	// Length is the length of TextContent in characters (runes).
	Length int `json:"length"`
}

// Validate returns an error if the article violates its invariants.
func (a *Article) Validate() error {
	if a.TextContent == "" {
		return Errorf(EINVALID, "article text content required")
	}
	if got := utf8.RuneCountInString(a.TextContent); a.Length != got {
		return Errorf(EINVALID, "article length %d does not match text content length %d", a.Length, got)
	}
	return nil
}

// Extractor extracts the main article from rendered HTML, removing
// navigation, ads and other boilerplate.
//
// Extraction is a pure function of its input: no I/O, no shared state
// between calls. Implementations are safe to invoke concurrently on
// independent inputs.
type Extractor interface {
	// Extract processes rendered HTML and returns the main article.
	// Returns ENOCONTENT if the page has no article-like content and
	// EINVALID if the input is empty or has no document root. A failed
	// extraction never returns a partial Article.
	Extract(html string) (*Article, error)
}
