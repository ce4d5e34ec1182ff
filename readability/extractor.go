// Package readability implements a scoring-based article extraction engine
// for fully rendered HTML documents. It identifies the DOM subtree most
// likely to contain the main article, strips boilerplate, and produces a
// readweb.Article with content, text and metadata.
//
// Extraction is deterministic: the same input and options always produce
// the same article. Scoring data lives in a side table keyed by node and
// is discarded after each call, so the engine is safe for concurrent use
// on independent documents.
package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readweb"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readweb.Extractor at compile time.
var _ readweb.Extractor = (*Extractor)(nil)

// Default tunables. These follow the published reference values of the
// upstream heuristic; they are exposed as options rather than re-derived.
const (
	// DefaultCharThreshold is the minimum number of characters the
	// extracted text must have for the extraction to succeed.
	DefaultCharThreshold = 500

	// DefaultSiblingScoreFraction is the fraction of the top candidate's
	// score a sibling must reach to be absorbed into the article.
	DefaultSiblingScoreFraction = 0.2

	// DefaultLinkDensityCeiling is the link density above which a block
	// inside the selected article is considered navigation and removed.
	DefaultLinkDensityCeiling = 0.5

	// minParagraphLength is the minimum text length for a node to take
	// part in scoring at all.
	minParagraphLength = 25
)

// Options holds the tunable parameters of the extraction heuristic.
// The zero value is not useful; start from DefaultOptions.
type Options struct {
	// CharThreshold is the minimum extracted text length (in runes) for
	// a successful extraction.
	CharThreshold int `yaml:"char_threshold"`

	// SiblingScoreFraction controls sibling absorption (see above).
	SiblingScoreFraction float64 `yaml:"sibling_score_fraction"`

	// LinkDensityCeiling controls boilerplate cleanup (see above).
	LinkDensityCeiling float64 `yaml:"link_density_ceiling"`

	// MaxElemsToParse caps the number of elements processed.
	// Zero means no limit.
	MaxElemsToParse int `yaml:"max_elems_to_parse"`

	// FavorPatterns, PenaltyPatterns and StripPatterns extend the
	// built-in class/id rule set with additional regular expressions.
	FavorPatterns   []string `yaml:"favor_patterns"`
	PenaltyPatterns []string `yaml:"penalty_patterns"`
	StripPatterns   []string `yaml:"strip_patterns"`

	// KeepClasses preserves all class attributes in the output HTML.
	// When false only ClassesToPreserve survive.
	KeepClasses bool `yaml:"keep_classes"`

	// ClassesToPreserve lists class names kept even when KeepClasses is
	// false.
	ClassesToPreserve []string `yaml:"classes_to_preserve"`

	// KeepImages preserves img, picture and figure elements in the
	// extracted content.
	KeepImages bool `yaml:"keep_images"`
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		CharThreshold:        DefaultCharThreshold,
		SiblingScoreFraction: DefaultSiblingScoreFraction,
		LinkDensityCeiling:   DefaultLinkDensityCeiling,
		KeepImages:           true,
	}
}

// Option configures an Extractor.
type Option func(*Options)

// WithCharThreshold sets the minimum extracted text length.
func WithCharThreshold(n int) Option {
	return func(o *Options) { o.CharThreshold = n }
}

// WithSiblingScoreFraction sets the sibling absorption fraction.
func WithSiblingScoreFraction(f float64) Option {
	return func(o *Options) { o.SiblingScoreFraction = f }
}

// WithLinkDensityCeiling sets the cleanup link density ceiling.
func WithLinkDensityCeiling(f float64) Option {
	return func(o *Options) { o.LinkDensityCeiling = f }
}

// WithMaxElemsToParse caps the number of elements processed.
func WithMaxElemsToParse(n int) Option {
	return func(o *Options) { o.MaxElemsToParse = n }
}

// WithFavorPatterns appends favor patterns to the rule set.
func WithFavorPatterns(patterns ...string) Option {
	return func(o *Options) { o.FavorPatterns = append(o.FavorPatterns, patterns...) }
}

// WithPenaltyPatterns appends penalty patterns to the rule set.
func WithPenaltyPatterns(patterns ...string) Option {
	return func(o *Options) { o.PenaltyPatterns = append(o.PenaltyPatterns, patterns...) }
}

// WithStripPatterns appends strip patterns to the rule set.
func WithStripPatterns(patterns ...string) Option {
	return func(o *Options) { o.StripPatterns = append(o.StripPatterns, patterns...) }
}

// WithKeepClasses preserves class attributes in the output HTML.
func WithKeepClasses() Option {
	return func(o *Options) { o.KeepClasses = true }
}

// WithClassesToPreserve lists class names kept in the output HTML.
func WithClassesToPreserve(classes ...string) Option {
	return func(o *Options) { o.ClassesToPreserve = append(o.ClassesToPreserve, classes...) }
}

// WithoutImages strips img, picture and figure elements from the content.
func WithoutImages() Option {
	return func(o *Options) { o.KeepImages = false }
}

// WithOptions replaces the full option set, e.g. with values loaded from
// a YAML file via LoadOptions.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Extractor extracts the main article from rendered HTML.
type Extractor struct {
	opts  Options
	rules *ruleSet
}

// NewExtractor creates an Extractor with the reference configuration,
// adjusted by the given options. Returns an error if a user-supplied
// pattern does not compile.
func NewExtractor(opts ...Option) (*Extractor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rules, err := newRuleSet(o.FavorPatterns, o.PenaltyPatterns, o.StripPatterns)
	if err != nil {
		return nil, readweb.Errorf(readweb.EINVALID, "invalid class pattern: %s", err)
	}

	return &Extractor{opts: o, rules: rules}, nil
}

// Extract processes rendered HTML and returns the main article.
func (e *Extractor) Extract(rawHTML string) (*readweb.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readweb.Errorf(readweb.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readweb.Errorf(readweb.EINVALID, "parsing HTML: %s", err)
	}

	return e.extract(doc)
}

// extract runs the full pipeline on a parsed document. The document tree
// is owned by this call and mutated freely.
func (e *Extractor) extract(doc *html.Node) (*readweb.Article, error) {
	root := findHTML(doc)
	body := findBody(doc)
	if root == nil || body == nil {
		return nil, readweb.Errorf(readweb.EINVALID, "document has no root element")
	}

	if e.opts.MaxElemsToParse > 0 {
		if n := len(collectElements(doc)); n > e.opts.MaxElemsToParse {
			return nil, readweb.Errorf(readweb.EINVALID, "document has %d elements, limit is %d", n, e.opts.MaxElemsToParse)
		}
	}

	// Metadata comes first: byline detection and the document title need
	// the head intact, and strip rules would otherwise discard byline
	// nodes before they are read.
	meta := e.collectMetadata(doc)

	e.prepDocument(doc)

	content, err := e.selectArticle(body)
	if err != nil {
		return nil, err
	}

	e.cleanArticle(content)

	text := renderText(content)
	if utf8.RuneCountInString(text) < e.opts.CharThreshold {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "extracted text is shorter than %d characters", e.opts.CharThreshold)
	}

	if meta.direction == "" {
		meta.direction = contentDirection(content)
	}

	article := &readweb.Article{
		Title:       meta.title,
		Byline:      meta.byline,
		Content:     dom.OuterHTML(content),
		TextContent: text,
		Excerpt:     meta.excerpt,
		SiteName:    meta.siteName,
		Language:    meta.language,
		Direction:   meta.direction,
		Length:      utf8.RuneCountInString(text),
	}

	if article.Excerpt == "" {
		article.Excerpt = firstParagraphText(content)
	}

	return article, nil
}

// firstParagraphText returns the text of the first substantial paragraph
// in the extracted content, used as an excerpt fallback.
func firstParagraphText(content *html.Node) string {
	for _, p := range dom.GetElementsByTagName(content, "p") {
		if text := normalizedText(p); len(text) >= minParagraphLength {
			return text
		}
	}
	return ""
}

// contentDirection picks up an explicit dir attribute from the selected
// content when the document element carried none.
func contentDirection(content *html.Node) string {
	for _, n := range collectElements(content) {
		switch strings.ToLower(dom.GetAttribute(n, "dir")) {
		case "ltr":
			return "ltr"
		case "rtl":
			return "rtl"
		}
	}
	return ""
}
