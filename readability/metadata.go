package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// metadata holds page-level fields read before the tree is mutated.
type metadata struct {
	title     string
	byline    string
	excerpt   string
	siteName  string
	language  string
	direction string
}

// Preference-ordered meta tag keys per field. Both the name and property
// attributes are consulted.
var (
	titleMetaKeys    = []string{"og:title", "twitter:title", "dc:title", "dcterms:title", "weibo:article:title"}
	excerptMetaKeys  = []string{"og:description", "twitter:description", "description", "dc:description", "dcterms:description"}
	bylineMetaKeys   = []string{"author", "dc:creator", "dcterms:creator", "article:author"}
	siteNameMetaKeys = []string{"og:site_name", "twitter:site"}
)

// collectMetadata reads title, byline, excerpt, site name, language and
// direction from document metadata. It runs before preprocessing so meta
// tags and byline nodes are still present.
func (e *Extractor) collectMetadata(doc *html.Node) *metadata {
	m := &metadata{}

	if root := findHTML(doc); root != nil {
		m.language = strings.TrimSpace(dom.GetAttribute(root, "lang"))
		switch strings.ToLower(dom.GetAttribute(root, "dir")) {
		case "ltr":
			m.direction = "ltr"
		case "rtl":
			m.direction = "rtl"
		}
	}

	values := metaValues(doc)
	m.excerpt = firstMetaValue(values, excerptMetaKeys)
	m.siteName = firstMetaValue(values, siteNameMetaKeys)

	m.byline = firstMetaValue(values, bylineMetaKeys)
	if m.byline == "" || strings.HasPrefix(m.byline, "http") {
		// article:author is frequently a profile URL; prefer a byline
		// node from the page over a link.
		if byline := findByline(doc); byline != "" {
			m.byline = byline
		} else if strings.HasPrefix(m.byline, "http") {
			m.byline = ""
		}
	}

	metaTitle := firstMetaValue(values, titleMetaKeys)
	m.title = refineTitle(metaTitle, documentTitle(doc), m.siteName, doc)

	return m
}

// metaValues indexes meta tag contents by lowercased name and property.
// The first occurrence of a key wins, keeping extraction deterministic on
// documents with duplicated tags.
func metaValues(doc *html.Node) map[string]string {
	values := make(map[string]string)
	for _, meta := range dom.GetElementsByTagName(doc, "meta") {
		content := strings.TrimSpace(dom.GetAttribute(meta, "content"))
		if content == "" {
			continue
		}
		for _, attr := range []string{"property", "name"} {
			key := strings.ToLower(strings.TrimSpace(dom.GetAttribute(meta, attr)))
			// Normalize "dc.title" / "dcterms.title" style keys.
			key = strings.ReplaceAll(key, ".", ":")
			if key == "" {
				continue
			}
			if _, ok := values[key]; !ok {
				values[key] = content
			}
		}
	}
	return values
}

func firstMetaValue(values map[string]string, keys []string) string {
	for _, key := range keys {
		if v, ok := values[key]; ok {
			return v
		}
	}
	return ""
}

func documentTitle(doc *html.Node) string {
	for _, t := range dom.GetElementsByTagName(doc, "title") {
		return normalizedText(t)
	}
	return ""
}

// isBylineNode reports whether a node names the article author.
func isBylineNode(node *html.Node) bool {
	if dom.GetAttribute(node, "rel") == "author" ||
		strings.Contains(dom.GetAttribute(node, "itemprop"), "author") ||
		bylinePattern.MatchString(classAndID(node)) {
		text := normalizedText(node)
		return text != "" && len(text) < 100
	}
	return false
}

// findByline returns the text of the first byline node in document order.
func findByline(doc *html.Node) string {
	var byline string
	forEachElement(doc, func(node *html.Node) {
		if byline == "" && isBylineNode(node) {
			byline = normalizedText(node)
		}
	})
	return byline
}

// refineTitle derives the article title: structured metadata first, then
// the title element, then the page's single h1, stripping site-name
// suffixes along the way.
func refineTitle(metaTitle, docTitle, siteName string, doc *html.Node) string {
	orig := metaTitle
	if orig == "" {
		orig = docTitle
	}
	orig = strings.Join(strings.Fields(orig), " ")
	if orig == "" {
		return singleH1Text(doc)
	}

	// A known site name appearing as a separated suffix (or prefix) is
	// dropped outright.
	if siteName != "" {
		for _, sep := range []string{" | ", " - ", " – ", " — ", " » ", " / ", ": "} {
			if stripped, ok := strings.CutSuffix(orig, sep+siteName); ok && stripped != "" {
				return strings.TrimSpace(stripped)
			}
			if stripped, ok := strings.CutPrefix(orig, siteName+sep); ok && stripped != "" {
				return strings.TrimSpace(stripped)
			}
		}
	}

	cur := orig
	switch {
	case titleSeparators.MatchString(orig):
		cur = titleLastSeparator.ReplaceAllString(orig, "$1")
		if wordCount(cur) < 3 {
			cur = titleFirstSeparator.ReplaceAllString(orig, "$1")
		}
	case strings.Contains(orig, ": "):
		cur = orig[strings.LastIndex(orig, ":")+1:]
		if wordCount(cur) < 3 {
			cur = orig[strings.Index(orig, ":")+1:]
		}
	case len(orig) > 150 || len(orig) < 15:
		if h1 := singleH1Text(doc); h1 != "" {
			cur = h1
		}
	}

	cur = strings.TrimSpace(cur)
	if wordCount(cur) <= 1 {
		return orig
	}
	return cur
}

// singleH1Text returns the text of the page's h1 when there is exactly
// one; multiple h1s make the choice ambiguous.
func singleH1Text(doc *html.Node) string {
	h1s := dom.GetElementsByTagName(doc, "h1")
	if len(h1s) != 1 {
		return ""
	}
	return normalizedText(h1s[0])
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
