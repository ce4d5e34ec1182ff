// Package load orchestrates the page-to-documents pipeline.
// It coordinates fetching, extraction, normalization and splitting,
// turning each URL into an ordered sequence of document chunks.
package load

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"net/url"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readweb"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs loaded in parallel by LoadAll.
const DefaultConcurrency = 3

// Loader turns URLs into document chunks. Fetcher and Extractor are
// required; the remaining collaborators are optional and skipped when nil.
type Loader struct {
	Fetcher    readweb.Fetcher
	Extractor  readweb.Extractor
	Converter  readweb.Converter
	Normalizer readweb.Normalizer
	Splitter   readweb.Splitter
	Languages  readweb.LanguageDetector
	Limiter    readweb.DomainLimiter

	// Concurrency bounds the number of URLs processed in parallel by
	// LoadAll. Zero or negative means DefaultConcurrency.
	Concurrency int
}

// ProgressEvent reports progress during a LoadAll operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting load progress.
type ProgressFunc func(event ProgressEvent)

// Load fetches one URL and returns its document chunks in order.
// Every chunk carries the full article metadata; Position reflects the
// chunk order within the page.
func (l *Loader) Load(ctx context.Context, rawURL string) ([]*readweb.Document, error) {
	if l.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, readweb.Errorf(readweb.EINVALID, "invalid url %q: %v", rawURL, err)
		}
		if err := l.Limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := l.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text := article.TextContent
	if l.Converter != nil {
		text, err = l.Converter.Convert(article.Content)
		if err != nil {
			return nil, err
		}
	}
	if l.Normalizer != nil {
		text = l.Normalizer.Normalize(text)
	}
	length := utf8.RuneCountInString(text)

	language := article.Language
	if language == "" && l.Languages != nil {
		if code, ok := l.Languages.Detect(text); ok {
			language = code
		}
	}

	chunks := []string{text}
	if l.Splitter != nil {
		chunks = l.Splitter.Split(text)
	}
	if len(chunks) == 0 {
		return nil, readweb.Errorf(readweb.ENOCONTENT, "no content left after splitting %q", rawURL)
	}

	fetchedAt := time.Now().UTC()
	docs := make([]*readweb.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = &readweb.Document{
			URL:           rawURL,
			Position:      i,
			Text:          chunk,
			Title:         article.Title,
			Excerpt:       article.Excerpt,
			Byline:        article.Byline,
			Direction:     article.Direction,
			Language:      language,
			SiteName:      article.SiteName,
			ArticleLength: length,
			ContentHash:   hashText(chunk),
			FetchedAt:     fetchedAt,
		}
	}
	return docs, nil
}

// LoadAll loads multiple URLs concurrently. Documents are returned in
// input URL order, chunks in page order. A URL that fails is reported
// through the progress callback and skipped; LoadAll only returns an
// error when the context is canceled.
func (l *Loader) LoadAll(ctx context.Context, urls []string, progress ProgressFunc) ([]*readweb.Document, error) {
	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	type loadResult struct {
		position int
		url      string
		docs     []*readweb.Document
		err      error
	}

	resultCh := make(chan loadResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				docs, err := l.Load(gctx, u)
				resultCh <- loadResult{position: i, url: u, docs: docs, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]loadResult, len(urls))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Error = result.err
			}
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var docs []*readweb.Document
	for _, result := range results {
		if result.err != nil {
			continue
		}
		docs = append(docs, result.docs...)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return docs, nil
}

// hashText computes a fixed-width xxhash-64 hex digest of the text.
func hashText(text string) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], xxhash.Sum64String(text))
	return hex.EncodeToString(buf[:])
}
