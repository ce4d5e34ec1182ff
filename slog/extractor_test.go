package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/mock"
	rwslog "github.com/fwojciec/readweb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs title and length on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*readweb.Article, error) {
				return &readweb.Article{
					Title:       "Post Title",
					TextContent: "Body text.",
					Length:      10,
				}, nil
			},
		}

		extractor := rwslog.NewLoggingExtractor(inner, logger)
		article, err := extractor.Extract("<html><body>Body text.</body></html>")

		require.NoError(t, err)
		assert.Equal(t, "Post Title", article.Title)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "title=\"Post Title\"")
		assert.Contains(t, output, "length=10")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*readweb.Article, error) {
				return nil, readweb.Errorf(readweb.ENOCONTENT, "no article content found")
			},
		}

		extractor := rwslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "no article content found")
	})
}
