package readability

import (
	"regexp"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

var multiNewline = regexp.MustCompile(`\n{3,}`)

// renderText produces the plain-text view of a subtree. Inline whitespace
// collapses to single spaces; block-level boundaries and br elements
// become line breaks; runs of blank lines collapse to one.
func renderText(node *html.Node) string {
	var sb strings.Builder
	writeText(node, &sb)

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := strings.Join(lines, "\n")
	out = multiNewline.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func writeText(node *html.Node, sb *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		text := collapseWhitespace(node.Data)
		if text != "" {
			sb.WriteString(text)
		}
		return
	case html.ElementNode:
		if dom.TagName(node) == "br" {
			sb.WriteString("\n")
			return
		}
	}

	block := isBlock(node)
	if block {
		paragraphBreak(sb)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		writeText(child, sb)
	}
	if block {
		paragraphBreak(sb)
	}
}

// collapseWhitespace replaces whitespace runs with single spaces while
// keeping leading/trailing separators, so adjacent inline nodes stay
// separated.
func collapseWhitespace(s string) string {
	if strings.TrimSpace(s) == "" {
		if s == "" {
			return ""
		}
		return " "
	}
	var sb strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !inSpace {
				sb.WriteRune(' ')
				inSpace = true
			}
			continue
		}
		sb.WriteRune(r)
		inSpace = false
	}
	return sb.String()
}

// paragraphBreak separates block-level boundaries with a blank line.
// Nested blocks share one break; excess newlines collapse during the
// final pass in renderText.
func paragraphBreak(sb *strings.Builder) {
	if sb.Len() == 0 {
		return
	}
	for !strings.HasSuffix(sb.String(), "\n\n") {
		sb.WriteString("\n")
	}
}
