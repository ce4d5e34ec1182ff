package readability

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Elements removed from the selected article regardless of content.
var alwaysCleanTags = []string{"object", "embed", "footer", "aside", "input", "textarea", "select", "button"}

// Presentational attributes stripped from every element in the output.
var presentationalAttrs = []string{"style", "align", "background", "bgcolor", "border", "cellpadding", "cellspacing", "frame", "hspace", "rules", "valign", "vspace"}

// shareElementThreshold is the text length below which a share/social
// widget match is trusted; longer blocks may legitimately discuss sharing.
const shareElementThreshold = 500

// cleanArticle strips boilerplate that survived inside the selected
// subtree. The pass is idempotent: cleaning an already-cleaned tree makes
// no further changes.
func (e *Extractor) cleanArticle(content *html.Node) {
	for _, tag := range alwaysCleanTags {
		for _, node := range dom.GetElementsByTagName(content, tag) {
			removeNode(node)
		}
	}

	e.cleanShareElements(content)
	e.cleanEmbeds(content)
	e.cleanHeaders(content)

	for _, tag := range []string{"table", "ul", "fieldset", "form", "div"} {
		e.cleanConditionally(content, tag)
	}

	if !e.opts.KeepImages {
		for _, tag := range []string{"img", "picture", "figure"} {
			for _, node := range dom.GetElementsByTagName(content, tag) {
				removeNode(node)
			}
		}
	}

	collapseWrappers(content)
	removeEmptyParagraphs(content)
	removeBreaksBeforeParagraphs(content)
	e.cleanAttributes(content)
	mergeTextNodes(content)
}

// cleanShareElements removes social share widgets below the content floor.
func (e *Extractor) cleanShareElements(content *html.Node) {
	for _, node := range collectElements(content) {
		if !attached(content, node) || node == content {
			continue
		}
		if shareElements.MatchString(classAndID(node)) &&
			len(normalizedText(node)) < shareElementThreshold {
			removeNode(node)
		}
	}
}

// cleanEmbeds removes iframes and video embeds except recognized players.
func (e *Extractor) cleanEmbeds(content *html.Node) {
	for _, node := range dom.GetElementsByTagName(content, "iframe") {
		if videoEmbeds.MatchString(dom.GetAttribute(node, "src")) {
			continue
		}
		removeNode(node)
	}
	for _, node := range dom.GetElementsByTagName(content, "video") {
		if videoEmbeds.MatchString(dom.GetAttribute(node, "src")) {
			continue
		}
		removeNode(node)
	}
}

// cleanHeaders drops headings whose class/id mark them as boilerplate.
func (e *Extractor) cleanHeaders(content *html.Node) {
	for _, tag := range []string{"h1", "h2"} {
		for _, node := range dom.GetElementsByTagName(content, tag) {
			if e.rules.classWeight(classAndID(node)) < 0 {
				removeNode(node)
			}
		}
	}
}

// cleanConditionally removes nodes of the given tag that look fishy:
// negative class weight, link density above the ceiling, or structural
// stats (images vs paragraphs, inputs, list shape) that suggest widgets
// rather than prose. Children are evaluated before parents so a single
// pass converges.
func (e *Extractor) cleanConditionally(content *html.Node, tag string) {
	nodes := dom.GetElementsByTagName(content, tag)
	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]
		if !attached(content, node) || node == content {
			continue
		}
		if e.shouldClean(node, tag) {
			removeNode(node)
		}
	}
}

func (e *Extractor) shouldClean(node *html.Node, tag string) bool {
	weight := e.rules.classWeight(classAndID(node))
	if weight < 0 {
		return true
	}

	if charCount(node, ",") >= 10 {
		return false
	}

	// Few commas: fall back to structural stats.
	pCount := len(dom.GetElementsByTagName(node, "p"))
	imgCount := len(dom.GetElementsByTagName(node, "img"))
	liCount := len(dom.GetElementsByTagName(node, "li")) - 100
	inputCount := len(dom.GetElementsByTagName(node, "input"))
	embedCount := 0
	for _, embedTag := range []string{"object", "embed", "iframe"} {
		for _, embed := range dom.GetElementsByTagName(node, embedTag) {
			if videoEmbeds.MatchString(dom.GetAttribute(embed, "src")) {
				return false
			}
			embedCount++
		}
	}

	text := normalizedText(node)
	density := linkDensity(node)

	switch {
	case imgCount > 1 && float64(pCount)/float64(imgCount) < 0.5 && !hasAncestorTag(node, "figure", 0):
		return true
	case tag != "ul" && tag != "ol" && liCount > pCount:
		return true
	case inputCount > pCount/3:
		return true
	case len(text) < minParagraphLength && (imgCount == 0 || imgCount > 2) && !hasAncestorTag(node, "figure", 0):
		return true
	case weight < 25 && density > 0.2:
		return true
	case weight >= 25 && density > e.opts.LinkDensityCeiling:
		return true
	case (embedCount == 1 && len(text) < 75) || embedCount > 1:
		return true
	}
	return false
}

// collapseWrappers unwraps nested single-child div/section wrappers
// inside the content container.
func collapseWrappers(content *html.Node) {
	for _, node := range collectElements(content) {
		if !attached(content, node) || node == content {
			continue
		}
		tag := dom.TagName(node)
		if tag != "div" && tag != "section" {
			continue
		}
		for {
			child, ok := hasSingleElementChild(node, "div")
			if !ok {
				child, ok = hasSingleElementChild(node, "section")
			}
			if !ok {
				break
			}
			// Hoist the grandchildren; the wrapper child disappears.
			for _, grandchild := range childNodes(child) {
				removeNode(grandchild)
				node.InsertBefore(grandchild, child)
			}
			removeNode(child)
		}
	}
}

// removeEmptyParagraphs drops paragraphs with no text and no media.
func removeEmptyParagraphs(content *html.Node) {
	for _, p := range dom.GetElementsByTagName(content, "p") {
		if len(dom.GetElementsByTagName(p, "img"))+
			len(dom.GetElementsByTagName(p, "embed"))+
			len(dom.GetElementsByTagName(p, "object"))+
			len(dom.GetElementsByTagName(p, "iframe")) > 0 {
			continue
		}
		if normalizedText(p) == "" {
			removeNode(p)
		}
	}
}

// removeBreaksBeforeParagraphs drops br elements immediately preceding a
// paragraph; the paragraph boundary already separates the content.
func removeBreaksBeforeParagraphs(content *html.Node) {
	for _, br := range dom.GetElementsByTagName(content, "br") {
		next := skipWhitespaceNodes(br.NextSibling)
		if next != nil && isElement(next) && dom.TagName(next) == "p" {
			removeNode(br)
		}
	}
}

// cleanAttributes strips presentational attributes everywhere and class
// attributes unless preserved by the options.
func (e *Extractor) cleanAttributes(content *html.Node) {
	preserve := make(map[string]bool, len(e.opts.ClassesToPreserve))
	for _, class := range e.opts.ClassesToPreserve {
		preserve[class] = true
	}

	forEachElement(content, func(node *html.Node) {
		for _, attr := range presentationalAttrs {
			dom.RemoveAttribute(node, attr)
		}
		if e.opts.KeepClasses || node == content {
			return
		}
		var kept []string
		for _, class := range strings.Fields(dom.GetAttribute(node, "class")) {
			if preserve[class] {
				kept = append(kept, class)
			}
		}
		if len(kept) > 0 {
			dom.SetAttribute(node, "class", strings.Join(kept, " "))
		} else {
			dom.RemoveAttribute(node, "class")
		}
	})
}

// mergeTextNodes joins adjacent text nodes left behind by node removals
// so serialization is stable across repeated cleaning.
func mergeTextNodes(node *html.Node) {
	child := node.FirstChild
	for child != nil {
		next := child.NextSibling
		if child.Type == html.TextNode && next != nil && next.Type == html.TextNode {
			child.Data += next.Data
			node.RemoveChild(next)
			continue
		}
		if child.Type == html.ElementNode {
			mergeTextNodes(child)
		}
		child = next
	}
}
