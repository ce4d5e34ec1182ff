package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/load"
)

// Loader is the loading surface wrapped by LoggingLoader.
type Loader interface {
	Load(ctx context.Context, url string) ([]*readweb.Document, error)
	LoadAll(ctx context.Context, urls []string, progress load.ProgressFunc) ([]*readweb.Document, error)
}

// Ensure load.Loader satisfies the wrapped surface.
var _ Loader = (*load.Loader)(nil)

// Ensure LoggingLoader implements Loader.
var _ Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, url string) (docs []*readweb.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load",
			"url", url,
			"chunks", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, url)
}

// LoadAll delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadAll(ctx context.Context, urls []string, progress load.ProgressFunc) (docs []*readweb.Document, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load all",
			"urls", len(urls),
			"documents", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadAll(ctx, urls, progress)
}
