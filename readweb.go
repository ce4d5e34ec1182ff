// Package readweb extracts the primary readable content from fully
// rendered web pages and turns it into documents for ingestion pipelines.
// A browser-based fetcher produces the rendered HTML, a scoring-based
// extraction engine selects the main article, and optional collaborators
// normalize and split the text into per-chunk documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, rod/, sqlite/).
package readweb
