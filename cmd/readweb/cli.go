package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/load"
	rwslog "github.com/fwojciec/readweb/slog"
)

// Dependencies holds the wired pipeline and output sinks for command
// execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Loader    rwslog.Loader
	Documents readweb.DocumentService
	Writer    readweb.DocumentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs []string `arg:"" name:"url" help:"Page URLs to load."`

	Engine    string        `default:"readability" enum:"readability,trafilatura,selector" help:"Extraction engine."`
	WaitUntil string        `default:"domcontentloaded" enum:"commit,domcontentloaded,load,networkidle" help:"Browser wait condition."`
	Proxy     string        `help:"Proxy server address."`
	Timeout   time.Duration `default:"60s" help:"Per-page fetch timeout."`
	NoBrowser bool          `help:"Fetch with plain HTTP instead of a browser (no JS execution)."`

	ChunkSize    int `placeholder:"N" help:"Split text into chunks of up to N characters (0 disables splitting)."`
	ChunkOverlap int `default:"200" help:"Overlap between consecutive chunks."`

	Format      string `default:"text" enum:"text,markdown,json" help:"Output format."`
	DB          string `type:"path" help:"Save documents to this SQLite database."`
	Out         string `type:"path" help:"Write one file per document under this directory."`
	Concurrency int    `default:"3" help:"Concurrent page loads."`
	Verbose     bool   `short:"v" help:"Log pipeline activity to stderr."`
	Options     string `type:"path" help:"YAML file with extraction tunables."`
}

// Run executes the load pipeline for the given URLs.
func (c *CLI) Run(deps *Dependencies) error {
	progress := func(event load.ProgressEvent) {
		if event.Type == load.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", event.URL, event.Error)
		}
	}

	docs, err := deps.Loader.LoadAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no pages loaded")
	}

	if deps.Documents != nil {
		for _, doc := range docs {
			if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
				return fmt.Errorf("saving document for %s: %s", doc.URL, readweb.ErrorMessage(err))
			}
		}
	}

	if deps.Writer != nil {
		for _, doc := range docs {
			if err := deps.Writer.CreateDocument(deps.Ctx, doc); err != nil {
				return fmt.Errorf("writing document for %s: %s", doc.URL, readweb.ErrorMessage(err))
			}
		}
	}

	if deps.Documents != nil || deps.Writer != nil {
		fmt.Fprintf(deps.Stdout, "Saved %d documents\n", len(docs))
		return nil
	}

	return printDocuments(deps.Stdout, docs, c.Format)
}

// printDocuments writes loaded documents to stdout in the chosen format.
func printDocuments(w io.Writer, docs []*readweb.Document, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docs)
	}

	for i, doc := range docs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, doc.Text)
	}
	return nil
}
