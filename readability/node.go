package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Tags treated as block-level when walking text and deciding whether a div
// holds only phrasing content.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

func isElement(node *html.Node) bool {
	return node != nil && node.Type == html.ElementNode
}

func isBlock(node *html.Node) bool {
	return isElement(node) && blockTags[dom.TagName(node)]
}

// forEachElement walks the subtree rooted at node in document order and
// calls fn for every element, including node itself.
func forEachElement(node *html.Node, fn func(*html.Node)) {
	if isElement(node) {
		fn(node)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		forEachElement(child, fn)
	}
}

// collectElements returns all elements under node in document order.
// Snapshotting before mutation keeps traversal stable while nodes are
// removed or moved.
func collectElements(node *html.Node) []*html.Node {
	var out []*html.Node
	forEachElement(node, func(n *html.Node) {
		out = append(out, n)
	})
	return out
}

func removeNode(node *html.Node) {
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}

// replaceNode swaps newNode into oldNode's position. newNode is detached
// from its current parent first.
func replaceNode(oldNode, newNode *html.Node) {
	parent := oldNode.Parent
	if parent == nil {
		return
	}
	removeNode(newNode)
	parent.InsertBefore(newNode, oldNode)
	parent.RemoveChild(oldNode)
}

// attached reports whether node is still reachable from root. Snapshot
// traversals use it to skip nodes removed by earlier steps.
func attached(root, node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// findBody returns the document's body element.
func findBody(doc *html.Node) *html.Node {
	for _, n := range dom.GetElementsByTagName(doc, "body") {
		return n
	}
	return nil
}

// findHTML returns the document's root html element.
func findHTML(doc *html.Node) *html.Node {
	for _, n := range dom.GetElementsByTagName(doc, "html") {
		return n
	}
	return nil
}

// classAndID joins a node's class and id attributes for pattern matching.
func classAndID(node *html.Node) string {
	return strings.TrimSpace(dom.GetAttribute(node, "class") + " " + dom.GetAttribute(node, "id"))
}

// normalizedText returns the node's text content with whitespace runs
// collapsed to single spaces and the ends trimmed.
func normalizedText(node *html.Node) string {
	return strings.Join(strings.Fields(dom.TextContent(node)), " ")
}

// linkDensity is the ratio of anchor text length to total text length
// within the subtree. Nodes without text have zero density.
func linkDensity(node *html.Node) float64 {
	total := len(normalizedText(node))
	if total == 0 {
		return 0
	}
	linked := 0
	for _, a := range dom.GetElementsByTagName(node, "a") {
		linked += len(normalizedText(a))
	}
	return float64(linked) / float64(total)
}

// charCount counts occurrences of the separator in the node's text.
func charCount(node *html.Node, sep string) int {
	return strings.Count(normalizedText(node), sep)
}

// hasAncestorTag reports whether any of the node's ancestors, up to
// maxDepth levels (0 for unlimited), has the given tag.
func hasAncestorTag(node *html.Node, tag string, maxDepth int) bool {
	depth := 0
	for p := node.Parent; p != nil; p = p.Parent {
		if maxDepth > 0 && depth >= maxDepth {
			return false
		}
		if isElement(p) && dom.TagName(p) == tag {
			return true
		}
		depth++
	}
	return false
}

// hasSingleElementChild reports whether node has exactly one element child
// with the given tag and no non-whitespace text outside it.
func hasSingleElementChild(node *html.Node, tag string) (*html.Node, bool) {
	var only *html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.ElementNode:
			if only != nil || dom.TagName(child) != tag {
				return nil, false
			}
			only = child
		case html.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				return nil, false
			}
		}
	}
	if only == nil {
		return nil, false
	}
	return only, true
}

// hasBlockChildren reports whether node contains any block-level element
// anywhere in its subtree.
func hasBlockChildren(node *html.Node) bool {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if isBlock(child) || (isElement(child) && hasBlockChildren(child)) {
			return true
		}
	}
	return false
}
