// Package trafilatura provides an alternative readweb.Extractor built on
// go-trafilatura. Its precision/recall tradeoffs differ from the scoring
// engine in the readability package; pages that defeat one sometimes
// yield to the other.
package trafilatura

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readweb"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readweb.Extractor at compile time.
var _ readweb.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes rendered HTML and returns the main article.
func (e *Extractor) Extract(rawHTML string) (*readweb.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readweb.Errorf(readweb.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "extracting content: %s", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "no article content found")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, readweb.Errorf(readweb.EINTERNAL, "rendering content: %s", err)
		}
	}

	article := &readweb.Article{
		Title:       result.Metadata.Title,
		Byline:      result.Metadata.Author,
		Content:     contentHTML,
		TextContent: text,
		Excerpt:     excerpt(result.Metadata.Description, text),
		SiteName:    result.Metadata.Sitename,
		Language:    result.Metadata.Language,
		Length:      utf8.RuneCountInString(text),
	}
	if err := article.Validate(); err != nil {
		return nil, err
	}
	return article, nil
}

// excerpt prefers the page description and falls back to the opening of
// the text.
func excerpt(description, text string) string {
	if description != "" {
		return description
	}
	const maxRunes = 200
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxRunes]))
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
