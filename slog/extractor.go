// Package slog provides logging decorators for pipeline components.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readweb"
)

// Ensure LoggingExtractor implements readweb.Extractor.
var _ readweb.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   readweb.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readweb.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (article *readweb.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"input_bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title,
				"length", article.Length,
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
