package readability

import (
	"regexp"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags removed outright before any scoring happens.
var junkTags = []string{"script", "noscript", "style", "template", "link"}

// Phrasing content stays inline when br runs are converted to paragraphs.
var phrasingTags = map[string]bool{
	"abbr": true, "audio": true, "b": true, "bdo": true, "br": true,
	"button": true, "cite": true, "code": true, "data": true, "datalist": true,
	"dfn": true, "em": true, "embed": true, "i": true, "img": true,
	"input": true, "kbd": true, "label": true, "mark": true, "math": true,
	"meter": true, "noscript": true, "object": true, "output": true,
	"progress": true, "q": true, "ruby": true, "samp": true, "script": true,
	"select": true, "small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "textarea": true, "time": true, "var": true, "wbr": true,
}

var hiddenStyle = regexp.MustCompile(`(?i)display\s*:\s*none|visibility\s*:\s*hidden`)

// prepDocument normalizes the document before candidate discovery:
// scripts, styles and comments go away, hidden elements are dropped,
// br runs become paragraph breaks and font elements become spans.
func (e *Extractor) prepDocument(doc *html.Node) {
	removeComments(doc)

	for _, tag := range junkTags {
		for _, node := range dom.GetElementsByTagName(doc, tag) {
			removeNode(node)
		}
	}

	for _, node := range collectElements(doc) {
		if !attached(doc, node) {
			continue
		}
		if isHidden(node) {
			removeNode(node)
		}
	}

	if body := findBody(doc); body != nil {
		replaceBrs(body)
	}

	for _, font := range dom.GetElementsByTagName(doc, "font") {
		font.Data = "span"
		font.DataAtom = atom.Span
	}
}

func removeComments(node *html.Node) {
	child := node.FirstChild
	for child != nil {
		next := child.NextSibling
		if child.Type == html.CommentNode {
			node.RemoveChild(child)
		} else {
			removeComments(child)
		}
		child = next
	}
}

func isHidden(node *html.Node) bool {
	if hiddenStyle.MatchString(dom.GetAttribute(node, "style")) {
		return true
	}
	if dom.HasAttribute(node, "hidden") {
		return true
	}
	if dom.GetAttribute(node, "aria-hidden") == "true" &&
		!strings.Contains(dom.GetAttribute(node, "class"), "fallback-image") {
		return true
	}
	return false
}

// isPhrasingContent reports whether a node belongs inline within a
// paragraph. Anchors count as phrasing only when their children do.
func isPhrasingContent(node *html.Node) bool {
	if node.Type == html.TextNode {
		return true
	}
	if node.Type != html.ElementNode {
		return false
	}
	tag := dom.TagName(node)
	if phrasingTags[tag] {
		return true
	}
	if tag == "a" || tag == "del" || tag == "ins" {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if !isPhrasingContent(child) {
				return false
			}
		}
		return true
	}
	return false
}

// skipWhitespaceNodes advances past whitespace-only text nodes.
func skipWhitespaceNodes(node *html.Node) *html.Node {
	for node != nil && node.Type == html.TextNode && strings.TrimSpace(node.Data) == "" {
		node = node.NextSibling
	}
	return node
}

// replaceBrs turns runs of two or more br elements into paragraph breaks,
// wrapping the inline content that follows each run into a new p element.
// Single brs inside a paragraph are left alone.
func replaceBrs(body *html.Node) {
	for _, br := range dom.GetElementsByTagName(body, "br") {
		if !attached(body, br) {
			continue
		}

		next := br.NextSibling
		replaced := false
		for {
			next = skipWhitespaceNodes(next)
			if next == nil || !isElement(next) || dom.TagName(next) != "br" {
				break
			}
			replaced = true
			extra := next
			next = next.NextSibling
			removeNode(extra)
		}
		if !replaced {
			continue
		}

		p := dom.CreateElement("p")
		replaceNode(br, p)

		next = p.NextSibling
		for next != nil {
			if isElement(next) && dom.TagName(next) == "br" {
				// A following br pair starts the next paragraph.
				after := skipWhitespaceNodes(next.NextSibling)
				if after != nil && isElement(after) && dom.TagName(after) == "br" {
					break
				}
			}
			if !isPhrasingContent(next) {
				break
			}
			sibling := next.NextSibling
			appendChild(p, next)
			next = sibling
		}

		for p.LastChild != nil && p.LastChild.Type == html.TextNode && strings.TrimSpace(p.LastChild.Data) == "" {
			p.RemoveChild(p.LastChild)
		}
	}
}

// appendChild moves child to the end of parent, detaching it from its
// current parent first.
func appendChild(parent, child *html.Node) {
	removeNode(child)
	parent.AppendChild(child)
}
