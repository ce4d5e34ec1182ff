package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readweb"
	main "github.com/fwojciec/readweb/cmd/readweb"
	"github.com/fwojciec/readweb/load"
	"github.com/fwojciec/readweb/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *main.CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_ParseDefaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{"https://example.com/post"})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/post"}, cli.URLs)
	assert.Equal(t, "readability", cli.Engine)
	assert.Equal(t, "domcontentloaded", cli.WaitUntil)
	assert.Equal(t, 60*time.Second, cli.Timeout)
	assert.Equal(t, "text", cli.Format)
	assert.Equal(t, 0, cli.ChunkSize)
	assert.Equal(t, 200, cli.ChunkOverlap)
	assert.Equal(t, 3, cli.Concurrency)
	assert.False(t, cli.NoBrowser)
	assert.False(t, cli.Verbose)
}

func TestCLI_ParseFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli)

	_, err := parser.Parse([]string{
		"--engine", "trafilatura",
		"--wait-until", "networkidle",
		"--proxy", "http://proxy:8080",
		"--timeout", "10s",
		"--no-browser",
		"--chunk-size", "2000",
		"--chunk-overlap", "100",
		"--format", "markdown",
		"--db", "readweb.db",
		"--out", "docs",
		"--concurrency", "5",
		"--verbose",
		"https://example.com/a",
		"https://example.com/b",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, cli.URLs)
	assert.Equal(t, "trafilatura", cli.Engine)
	assert.Equal(t, "networkidle", cli.WaitUntil)
	assert.Equal(t, "http://proxy:8080", cli.Proxy)
	assert.Equal(t, 10*time.Second, cli.Timeout)
	assert.True(t, cli.NoBrowser)
	assert.Equal(t, 2000, cli.ChunkSize)
	assert.Equal(t, 100, cli.ChunkOverlap)
	assert.Equal(t, "markdown", cli.Format)
	assert.Equal(t, "readweb.db", cli.DB)
	assert.Equal(t, "docs", cli.Out)
	assert.Equal(t, 5, cli.Concurrency)
	assert.True(t, cli.Verbose)
}

func TestCLI_RejectsUnknownEnumValues(t *testing.T) {
	t.Parallel()

	t.Run("engine", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser := newParser(t, cli)

		_, err := parser.Parse([]string{"--engine", "bogus", "https://example.com"})
		assert.Error(t, err)
	})

	t.Run("wait-until", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser := newParser(t, cli)

		_, err := parser.Parse([]string{"--wait-until", "eventually", "https://example.com"})
		assert.Error(t, err)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		parser := newParser(t, cli)

		_, err := parser.Parse([]string{"--format", "xml", "https://example.com"})
		assert.Error(t, err)
	})
}

// loaderStub is a function-field stand-in for the wired loader.
type loaderStub struct {
	LoadFn    func(ctx context.Context, url string) ([]*readweb.Document, error)
	LoadAllFn func(ctx context.Context, urls []string, progress load.ProgressFunc) ([]*readweb.Document, error)
}

func (s *loaderStub) Load(ctx context.Context, url string) ([]*readweb.Document, error) {
	return s.LoadFn(ctx, url)
}

func (s *loaderStub) LoadAll(ctx context.Context, urls []string, progress load.ProgressFunc) ([]*readweb.Document, error) {
	return s.LoadAllFn(ctx, urls, progress)
}

func testDeps(stdout, stderr *bytes.Buffer, docs []*readweb.Document) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Loader: &loaderStub{
			LoadAllFn: func(_ context.Context, urls []string, progress load.ProgressFunc) ([]*readweb.Document, error) {
				return docs, nil
			},
		},
	}
}

func TestCLI_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints document text to stdout", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		docs := []*readweb.Document{
			{URL: "https://example.com/post", Text: "First chunk."},
			{URL: "https://example.com/post", Position: 1, Text: "Second chunk."},
		}

		cli := &main.CLI{URLs: []string{"https://example.com/post"}, Format: "text"}
		err := cli.Run(testDeps(stdout, stderr, docs))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "First chunk.")
		assert.Contains(t, stdout.String(), "Second chunk.")
		assert.Empty(t, stderr.String())
	})

	t.Run("prints documents as JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		docs := []*readweb.Document{
			{URL: "https://example.com/post", Text: "Body text.", Title: "Post Title"},
		}

		cli := &main.CLI{URLs: []string{"https://example.com/post"}, Format: "json"}
		err := cli.Run(testDeps(stdout, stderr, docs))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"url": "https://example.com/post"`)
		assert.Contains(t, stdout.String(), `"title": "Post Title"`)
	})

	t.Run("reports failed URLs to stderr", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Loader: &loaderStub{
				LoadAllFn: func(_ context.Context, urls []string, progress load.ProgressFunc) ([]*readweb.Document, error) {
					progress(load.ProgressEvent{
						Type:  load.ProgressFailed,
						URL:   "https://example.com/bad",
						Error: readweb.Errorf(readweb.EUNAVAILABLE, "navigation failed"),
					})
					return []*readweb.Document{{URL: "https://example.com/good", Text: "ok"}}, nil
				},
			},
		}

		cli := &main.CLI{URLs: []string{"https://example.com/bad", "https://example.com/good"}, Format: "text"}
		err := cli.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip https://example.com/bad")
	})

	t.Run("fails when nothing loads", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		cli := &main.CLI{URLs: []string{"https://example.com/bad"}, Format: "text"}
		err := cli.Run(testDeps(stdout, stderr, nil))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no pages loaded")
	})

	t.Run("saves documents through the writer", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		docs := []*readweb.Document{
			{URL: "https://example.com/post", Text: "Body."},
			{URL: "https://example.com/post", Position: 1, Text: "More."},
		}

		var written []*readweb.Document
		deps := testDeps(stdout, stderr, docs)
		deps.Writer = &mock.DocumentWriter{
			CreateDocumentFn: func(_ context.Context, doc *readweb.Document) error {
				written = append(written, doc)
				return nil
			},
		}

		cli := &main.CLI{URLs: []string{"https://example.com/post"}, Format: "text", Out: "docs"}
		err := cli.Run(deps)

		require.NoError(t, err)
		assert.Len(t, written, 2)
		assert.Contains(t, stdout.String(), "Saved 2 documents")
		assert.NotContains(t, stdout.String(), "Body.", "content goes to files, not stdout")
	})

	t.Run("saves documents through the document service", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		docs := []*readweb.Document{
			{URL: "https://example.com/post", Text: "Body."},
		}

		var saved []*readweb.Document
		deps := testDeps(stdout, stderr, docs)
		deps.Documents = &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *readweb.Document) error {
				saved = append(saved, doc)
				return nil
			},
		}

		cli := &main.CLI{URLs: []string{"https://example.com/post"}, Format: "text", DB: "readweb.db"}
		err := cli.Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 1)
		assert.Contains(t, stdout.String(), "Saved 1 documents")
	})
}
