package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Framework identifies a documentation site generator. Generated sites
// have predictable content containers, so knowing the framework lets the
// extractor go straight to the right element instead of guessing.
type Framework string

const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// DetectFramework analyzes a parsed document and returns the identified
// framework. It checks for framework-specific CSS classes, data
// attributes, meta tags, and structural markers that are unique to each
// documentation generator. Returns FrameworkUnknown if the framework
// cannot be determined.
func DetectFramework(doc *goquery.Document) Framework {
	// Check meta generator tags first - most reliable when present
	if framework := detectFromMetaGenerator(doc); framework != FrameworkUnknown {
		return framework
	}

	// Check for Docusaurus markers
	// __docusaurus_skipToContent_fallback is highly specific
	if hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		hasSelector(doc, ".theme-doc-sidebar-container") ||
		hasSelector(doc, "[data-rh]") && hasSelector(doc, "[data-theme]") {
		return FrameworkDocusaurus
	}

	// Check for MkDocs Material markers
	// data-md-color-* attributes are unique to MkDocs Material
	if hasSelector(doc, "[data-md-color-scheme]") ||
		hasSelector(doc, "[data-md-component]") ||
		hasSelector(doc, ".md-nav--primary") {
		return FrameworkMkDocs
	}

	// Check for Sphinx markers (including ReadTheDocs theme)
	if hasSelector(doc, ".toctree-wrapper") ||
		hasSelector(doc, ".wy-nav-side") ||
		hasSelector(doc, ".wy-menu-vertical") ||
		hasSelector(doc, ".sphinxsidebar") {
		return FrameworkSphinx
	}

	// Check for VitePress markers (before VuePress since VitePress is a
	// VuePress successor). #VPContent and .VPDoc are unique to VitePress.
	if hasSelector(doc, "#VPContent") ||
		hasSelector(doc, ".VPDoc") ||
		hasSelector(doc, ".VPDocAsideOutline") {
		return FrameworkVitePress
	}

	// Check for VuePress markers
	if hasSelector(doc, ".theme-default-content") ||
		hasSelector(doc, ".sidebar-links") ||
		hasSelector(doc, ".vuepress-navbar") {
		return FrameworkVuePress
	}

	// Check for GitBook markers
	if hasSelector(doc, "[data-testid='space.sidebar']") ||
		hasSelector(doc, "[data-testid='page.desktopTableOfContents']") ||
		hasGitBookClasses(doc) {
		return FrameworkGitBook
	}

	// Check for Nextra markers
	if hasSelector(doc, ".nextra-navbar") ||
		hasSelector(doc, ".nextra-sidebar") ||
		hasSelector(doc, ".nextra-toc") {
		return FrameworkNextra
	}

	return FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for framework identification.
func detectFromMetaGenerator(doc *goquery.Document) Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return FrameworkUnknown
	}

	switch {
	case strings.Contains(generator, "sphinx"):
		return FrameworkSphinx
	case strings.Contains(generator, "gitbook"):
		return FrameworkGitBook
	case strings.Contains(generator, "docusaurus"):
		return FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return FrameworkMkDocs
	case strings.Contains(generator, "vitepress"):
		return FrameworkVitePress
	case strings.Contains(generator, "vuepress"):
		return FrameworkVuePress
	case strings.Contains(generator, "nextra"):
		return FrameworkNextra
	}

	return FrameworkUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasGitBookClasses checks for GitBook-specific classes on the html element.
// GitBook uses a combination of: circular-corners, theme-clean, tint
func hasGitBookClasses(doc *goquery.Document) bool {
	htmlClass := ""
	doc.Find("html").Each(func(_ int, s *goquery.Selection) {
		if class, exists := s.Attr("class"); exists {
			htmlClass = class
		}
	})

	if htmlClass == "" {
		return false
	}

	count := 0
	for _, marker := range []string{"circular-corners", "theme-clean", "tint"} {
		if strings.Contains(htmlClass, marker) {
			count++
		}
	}

	// Require at least two of these GitBook-specific classes
	return count >= 2
}

// frameworkSelectors maps each framework to its content containers in
// preference order. The extractor tries these before the generic list.
var frameworkSelectors = map[Framework][]string{
	FrameworkDocusaurus: {
		".theme-doc-markdown",
		"article .markdown",
		"main article",
	},
	FrameworkMkDocs: {
		"article.md-content__inner",
		".md-content article",
		".md-content",
	},
	FrameworkSphinx: {
		"[role='main']",
		".document .body",
		".body",
	},
	FrameworkVitePress: {
		".VPDoc .vp-doc",
		".VPDoc main",
		"#VPContent main",
	},
	FrameworkVuePress: {
		".theme-default-content",
		"main .content__default",
	},
	FrameworkGitBook: {
		"main",
		"[data-testid='page.contentEditor']",
	},
	FrameworkNextra: {
		"article.nextra-content",
		"main .nextra-content",
		"main",
	},
}

// genericSelectors is the fallback chain for unknown frameworks and for
// framework pages whose specific containers are missing.
var genericSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#content",
	".post-content",
	".article-body",
	".content",
}
