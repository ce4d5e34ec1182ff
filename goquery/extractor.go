// Package goquery provides a CSS-selector readweb.Extractor tuned for
// generated documentation sites. Instead of scoring the whole DOM it
// detects the site's framework and reads the framework's known content
// container directly.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readweb"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readweb.Extractor at compile time.
var _ readweb.Extractor = (*Extractor)(nil)

// DefaultTextThreshold is the minimum rune count for a container to be
// accepted as the article.
const DefaultTextThreshold = 140

// boilerplateSelector matches elements removed from a selected container
// before it is returned as article content.
const boilerplateSelector = "nav, aside, footer, header, script, style, noscript, " +
	".sidebar, .toc, .table-of-contents, .breadcrumbs, .pagination-nav, .edit-this-page"

// Extractor extracts article content by trying content-container
// selectors in preference order: the detected framework's containers
// first, then a generic chain. Extractor is safe for concurrent use.
type Extractor struct {
	threshold int
	selectors map[Framework][]string
	fallback  []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTextThreshold sets the minimum text length (in runes) a container
// must have to be accepted.
func WithTextThreshold(n int) Option {
	return func(e *Extractor) {
		e.threshold = n
	}
}

// WithSelectors registers content selectors for a framework, replacing
// the built-in list.
func WithSelectors(f Framework, selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors[f] = selectors
	}
}

// NewExtractor creates an Extractor with the built-in selector tables.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		threshold: DefaultTextThreshold,
		selectors: make(map[Framework][]string, len(frameworkSelectors)),
		fallback:  genericSelectors,
	}
	for f, sels := range frameworkSelectors {
		e.selectors[f] = sels
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes rendered HTML and returns the main article.
func (e *Extractor) Extract(rawHTML string) (*readweb.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readweb.Errorf(readweb.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readweb.Errorf(readweb.EINVALID, "parsing HTML: %s", err)
	}

	framework := DetectFramework(doc)
	candidates := append([]string{}, e.selectors[framework]...)
	candidates = append(candidates, e.fallback...)

	for _, selector := range candidates {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		clone := sel.Clone()
		clone.Find(boilerplateSelector).Remove()

		text := selectionText(clone)
		if utf8.RuneCountInString(text) < e.threshold {
			continue
		}

		content, err := goquery.OuterHtml(clone)
		if err != nil {
			return nil, readweb.Errorf(readweb.EINTERNAL, "rendering content: %s", err)
		}

		article := e.buildArticle(doc, clone, content, text)
		if err := article.Validate(); err != nil {
			return nil, err
		}
		return article, nil
	}

	return nil, readweb.Errorf(readweb.ENOCONTENT, "no content container matched")
}

func (e *Extractor) buildArticle(doc *goquery.Document, content *goquery.Selection, contentHTML, text string) *readweb.Article {
	article := &readweb.Article{
		Title:       pageTitle(doc, content),
		Byline:      metaContent(doc, "meta[name='author']"),
		Content:     contentHTML,
		TextContent: text,
		Excerpt:     pageExcerpt(doc, text),
		SiteName:    metaContent(doc, "meta[property='og:site_name']"),
		Length:      utf8.RuneCountInString(text),
	}
	if root := doc.Find("html").First(); root.Length() > 0 {
		article.Language, _ = root.Attr("lang")
		if dir, ok := root.Attr("dir"); ok {
			switch strings.ToLower(dir) {
			case "ltr", "rtl":
				article.Direction = strings.ToLower(dir)
			}
		}
	}
	return article
}

func pageTitle(doc *goquery.Document, content *goquery.Selection) string {
	if t := metaContent(doc, "meta[property='og:title']"); t != "" {
		return t
	}
	if h1 := content.Find("h1").First(); h1.Length() > 0 {
		if t := strings.TrimSpace(h1.Text()); t != "" {
			return t
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func pageExcerpt(doc *goquery.Document, text string) string {
	if d := metaContent(doc, "meta[property='og:description']"); d != "" {
		return d
	}
	if d := metaContent(doc, "meta[name='description']"); d != "" {
		return d
	}
	const maxRunes = 200
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	return strings.TrimSpace(string([]rune(text)[:maxRunes]))
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// blockTags delimit paragraphs when rendering a selection as text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "table": true, "tr": true,
	"blockquote": true, "pre": true, "dl": true, "dt": true, "dd": true,
	"figure": true, "figcaption": true,
}

// selectionText renders a selection as plain text with block boundaries
// as blank lines; goquery's Text() concatenates without separation.
func selectionText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, node := range sel.Nodes {
		writeNodeText(node, &sb)
	}

	lines := strings.Split(sb.String(), "\n")
	var out []string
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func writeNodeText(node *html.Node, sb *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(node.Data), " ")
		if text != "" {
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		return
	case html.ElementNode:
		if node.Data == "br" {
			sb.WriteString("\n")
			return
		}
	}

	block := node.Type == html.ElementNode && blockTags[node.Data]
	if block {
		sb.WriteString("\n\n")
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeNodeText(child, sb)
	}
	if block {
		sb.WriteString("\n\n")
	}
}
