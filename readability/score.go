package readability

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readweb"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags whose text feeds the scoring pass.
var tagsToScore = map[string]bool{
	"section": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "p": true, "td": true, "pre": true,
}

// ARIA roles that mark a node as page furniture rather than content.
var unlikelyRoles = map[string]bool{
	"menu": true, "menubar": true, "complementary": true, "navigation": true,
	"alert": true, "alertdialog": true, "dialog": true,
}

var sentenceEnd = regexp.MustCompile(`\.( |$)`)

// selectArticle runs candidate discovery, ranking and sibling absorption
// on the prepared document body and returns a container element holding
// the selected article content.
func (e *Extractor) selectArticle(body *html.Node) (*html.Node, error) {
	e.stripUnlikely(body)

	// CandidateScore side table: all transient scoring state lives here,
	// keyed by node identity, and dies with this call. The tree itself
	// carries no scoring data.
	scores := make(map[*html.Node]float64)

	for _, elem := range scorableElements(body) {
		text := normalizedText(elem)
		if utf8.RuneCountInString(text) < minParagraphLength {
			continue
		}

		// Base score: one point for the paragraph itself, one per
		// comma-separated segment boundary, one per 100 characters up
		// to three.
		score := 1.0
		score += float64(strings.Count(text, ","))
		score += math.Min(float64(len(text))/100, 3)

		// Propagate upward with decay: the parent receives the full
		// score, the grandparent half, nothing beyond. Article
		// containers usually sit one or two levels above the text.
		parent := elem.Parent
		if parent == nil || !isElement(parent) {
			continue
		}
		if _, ok := scores[parent]; !ok {
			scores[parent] = e.initialScore(parent)
		}
		scores[parent] += score

		if gp := parent.Parent; gp != nil && isElement(gp) {
			if _, ok := scores[gp]; !ok {
				scores[gp] = e.initialScore(gp)
			}
			scores[gp] += score / 2
		}
	}

	if len(scores) == 0 {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "no scorable content found")
	}

	// Rank candidates in document order so that equal adjusted scores
	// deterministically resolve to the earliest candidate.
	candidates := candidatesInDocumentOrder(body, scores)

	var top *html.Node
	topScore := 0.0
	for _, c := range candidates {
		adjusted := scores[c] * (1 - linkDensity(c))
		scores[c] = adjusted
		if top == nil || adjusted > topScore {
			top = c
			topScore = adjusted
		}
	}
	if top == nil || topScore <= 0 {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "no candidate scored above zero")
	}

	return e.absorbSiblings(body, top, topScore, scores), nil
}

// candidatesInDocumentOrder returns the scored nodes sorted by their
// position in the document.
func candidatesInDocumentOrder(body *html.Node, scores map[*html.Node]float64) []*html.Node {
	position := make(map[*html.Node]int)
	for i, elem := range collectElements(body) {
		position[elem] = i
	}

	candidates := make([]*html.Node, 0, len(scores))
	for node := range scores {
		candidates = append(candidates, node)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return position[candidates[i]] < position[candidates[j]]
	})
	return candidates
}

// absorbSiblings collects the top candidate and any of its siblings that
// look like legitimate content split across adjacent containers.
func (e *Extractor) absorbSiblings(body, top *html.Node, topScore float64, scores map[*html.Node]float64) *html.Node {
	container := dom.CreateElement("div")
	dom.SetAttribute(container, "id", "readability-page-1")
	dom.SetAttribute(container, "class", "page")

	threshold := math.Max(10, topScore*e.opts.SiblingScoreFraction)

	parent := top.Parent
	if parent == nil || top == body {
		// The body itself won; move its children into the container.
		for _, child := range childNodes(top) {
			appendChild(container, child)
		}
		return container
	}

	for _, sibling := range childNodes(parent) {
		if !e.shouldAbsorb(sibling, top, threshold, scores) {
			continue
		}
		appendChild(container, sibling)
	}
	return container
}

func (e *Extractor) shouldAbsorb(sibling, top *html.Node, threshold float64, scores map[*html.Node]float64) bool {
	if sibling == top {
		return true
	}
	if !isElement(sibling) {
		return false
	}

	bonus := 0.0
	if dom.GetAttribute(sibling, "class") != "" &&
		dom.GetAttribute(sibling, "class") == dom.GetAttribute(top, "class") {
		bonus = scores[top] * 0.2
	}
	if score, ok := scores[sibling]; ok && score+bonus >= threshold {
		return true
	}

	// Short paragraph-like siblings adjacent to the article root are
	// often intro or closing paragraphs.
	if dom.TagName(sibling) != "p" {
		return false
	}
	text := normalizedText(sibling)
	density := linkDensity(sibling)
	if len(text) > 80 && density < 0.25 {
		return true
	}
	if len(text) > 0 && len(text) <= 80 && density == 0 && sentenceEnd.MatchString(text) {
		return true
	}
	return false
}

// childNodes snapshots a node's children so they can be moved while
// iterating.
func childNodes(node *html.Node) []*html.Node {
	var out []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, child)
	}
	return out
}

// initialScore seeds a candidate with its tag weight and class/id
// adjustment.
func (e *Extractor) initialScore(node *html.Node) float64 {
	score := 0.0
	switch dom.TagName(node) {
	case "div", "article", "main":
		score += 5
	case "section", "pre", "td", "blockquote":
		score += 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form", "fieldset":
		score -= 3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		score -= 5
	}
	return score + e.rules.classWeight(classAndID(node))
}

// stripUnlikely removes nodes whose class/id mark them as boilerplate and
// converts text-bearing divs into paragraphs so they take part in scoring.
func (e *Extractor) stripUnlikely(body *html.Node) {
	for _, node := range collectElements(body) {
		if !attached(body, node) || node == body {
			continue
		}
		tag := dom.TagName(node)
		matchStr := classAndID(node)

		// Byline nodes were already read during metadata collection;
		// they never belong to the content.
		if isBylineNode(node) {
			removeNode(node)
			continue
		}

		if unlikelyRoles[strings.ToLower(dom.GetAttribute(node, "role"))] {
			removeNode(node)
			continue
		}

		favor, _, strip := e.rules.match(matchStr)
		if strip && !favor && !maybeCandidate.MatchString(matchStr) && tag != "a" {
			removeNode(node)
			continue
		}

		if tag == "div" {
			// A div wrapping a single p with little link text is a
			// trivial wrapper; the p stands on its own.
			if p, ok := hasSingleElementChild(node, "p"); ok && linkDensity(node) < 0.25 {
				replaceNode(node, p)
				continue
			}
			// A div without block children behaves like a paragraph.
			if !hasBlockChildren(node) {
				node.Data = "p"
				node.DataAtom = atom.P
			}
		}
	}
}

// scorableElements returns, in document order, the elements whose text
// feeds the scoring pass.
func scorableElements(body *html.Node) []*html.Node {
	var out []*html.Node
	forEachElement(body, func(n *html.Node) {
		if tagsToScore[dom.TagName(n)] {
			out = append(out, n)
		}
	})
	return out
}
