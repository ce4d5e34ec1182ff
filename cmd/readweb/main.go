// Command readweb extracts readable article content from web pages and
// turns it into documents for ingestion pipelines.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readweb"
	"github.com/fwojciec/readweb/fs"
	"github.com/fwojciec/readweb/goquery"
	"github.com/fwojciec/readweb/htmltomarkdown"
	rwhttp "github.com/fwojciec/readweb/http"
	"github.com/fwojciec/readweb/lingua"
	"github.com/fwojciec/readweb/load"
	"github.com/fwojciec/readweb/norm"
	"github.com/fwojciec/readweb/readability"
	"github.com/fwojciec/readweb/rod"
	rwslog "github.com/fwojciec/readweb/slog"
	"github.com/fwojciec/readweb/split"
	"github.com/fwojciec/readweb/sqlite"
	"github.com/fwojciec/readweb/trafilatura"
)

// domainRPS is the per-domain request rate applied during batch loads.
const domainRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when --db is used.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readweb"),
		kong.Description("Extract readable article content from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		if len(args) == 0 {
			return fmt.Errorf("no URL specified. Run 'readweb --help' for usage")
		}
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fetcher, err := m.buildFetcher(cli)
	if err != nil {
		if !cli.NoBrowser {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --no-browser")
		}
		return err
	}
	defer fetcher.Close()
	if cli.Verbose {
		fetcher = rod.NewLoggingFetcher(fetcher, logger)
	}

	extractor, err := buildExtractor(cli)
	if err != nil {
		return err
	}
	if cli.Verbose {
		extractor = rwslog.NewLoggingExtractor(extractor, logger)
	}

	loader := &load.Loader{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Normalizer:  norm.NewNormalizer(),
		Languages:   lingua.NewDetector(),
		Limiter:     load.NewDomainLimiter(domainRPS),
		Concurrency: cli.Concurrency,
	}
	if cli.Format == "markdown" {
		loader.Converter = htmltomarkdown.NewConverter()
	}
	if cli.ChunkSize > 0 {
		splitter, err := split.NewSplitter(cli.ChunkSize, cli.ChunkOverlap)
		if err != nil {
			return fmt.Errorf("invalid chunk settings: %s", readweb.ErrorMessage(err))
		}
		loader.Splitter = splitter
	}

	deps.Loader = loader
	if cli.Verbose {
		deps.Loader = rwslog.NewLoggingLoader(loader, logger)
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Documents = sqlite.NewDocumentService(m.DB)
	}

	if cli.Out != "" {
		deps.Writer = fs.NewWriter(cli.Out)
	}

	return kongCtx.Run(deps)
}

// buildFetcher wires the browser or plain-HTTP fetcher from CLI flags.
func (m *Main) buildFetcher(cli *CLI) (readweb.Fetcher, error) {
	if cli.NoBrowser {
		opts := []rwhttp.Option{
			rwhttp.WithTimeout(cli.Timeout),
			rwhttp.WithIgnoreCertErrors(),
		}
		if cli.Proxy != "" {
			opts = append(opts, rwhttp.WithProxy(cli.Proxy))
		}
		return rwhttp.NewFetcher(opts...)
	}

	managerOpts := []rod.ManagerOption{rod.WithIgnoreCertErrors()}
	if cli.Proxy != "" {
		managerOpts = append(managerOpts, rod.WithProxy(cli.Proxy))
	}
	manager, err := rod.NewBrowserManager(managerOpts...)
	if err != nil {
		return nil, err
	}

	return rod.NewFetcher(manager,
		rod.WithWaitUntil(readweb.WaitUntil(cli.WaitUntil)),
		rod.WithFetchTimeout(cli.Timeout),
	)
}

// buildExtractor selects the extraction engine from CLI flags.
func buildExtractor(cli *CLI) (readweb.Extractor, error) {
	switch cli.Engine {
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	case "selector":
		return goquery.NewExtractor(), nil
	default:
		var opts []readability.Option
		if cli.Options != "" {
			loaded, err := readability.LoadOptions(cli.Options)
			if err != nil {
				return nil, err
			}
			opts = append(opts, readability.WithOptions(loaded))
		}
		return readability.NewExtractor(opts...)
	}
}
