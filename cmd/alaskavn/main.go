package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/crawl"
	"github.com/fwojciec/alaskavn/firecrawl"
	"github.com/fwojciec/alaskavn/fs"
	"github.com/fwojciec/alaskavn/goquery"
	"github.com/fwojciec/alaskavn/htmltomarkdown"
	alaskahttp "github.com/fwojciec/alaskavn/http"
	alaskaslog "github.com/fwojciec/alaskavn/slog"
	"github.com/fwojciec/alaskavn/sqlite"
	"github.com/fwojciec/alaskavn/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database backing the optional page cache.
	DB *sqlite.DB

	fetcher alaskavn.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		_ = m.fetcher.Close()
	}
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
		kong.Name("alaskavn"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'alaskavn --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		cfg, err := LoadConfig(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.merge(cli)
	}

	// Fetch chain: direct HTTP first, Firecrawl as fallback when a key is
	// available. The original site serves static HTML, so the fallback only
	// matters when direct requests are blocked.
	var fetcher alaskavn.Fetcher = alaskahttp.NewFetcher(alaskahttp.WithTimeout(cli.Timeout))
	if cli.APIKey != "" {
		fetcher = &crawl.FallbackFetcher{
			Primary:  fetcher,
			Fallback: firecrawl.NewFetcher(cli.APIKey),
		}
	} else {
		fmt.Fprintln(stderr, "Warning: No Firecrawl API key provided. Using direct requests only.")
	}
	var sitemap alaskavn.Sitemap = alaskahttp.NewSitemap(nil, alaskavn.BaseURL)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = alaskaslog.NewLoggingFetcher(fetcher, logger)
		sitemap = alaskaslog.NewLoggingSitemap(sitemap, logger)
	}
	m.fetcher = fetcher

	var cache alaskavn.PageCache
	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open page cache at %q: %w", cli.Cache, err)
		}
		cache = sqlite.NewPageCache(m.DB)
	}

	// Failed URLs are skipped by default; --retry opts in to backoff.
	var retryDelays []time.Duration
	if cli.Retry {
		retryDelays = crawl.DefaultRetryDelays()
	}

	extractor := trafilatura.NewExtractor()

	deps.Writer = fs.NewWriter()
	deps.Products = &crawl.ProductCrawler{
		Sitemap: sitemap,
		Listing: &crawl.PageSource{
			Fetcher:     fetcher,
			Cache:       cache,
			Limiter:     crawl.NewLimiter(cli.PageDelay),
			RetryDelays: retryDelays,
		},
		Products: &crawl.PageSource{
			Fetcher:     fetcher,
			Cache:       cache,
			Limiter:     crawl.NewLimiter(cli.Delay),
			RetryDelays: retryDelays,
		},
		Extractor:       &goquery.ProductExtractor{Content: extractor},
		MaxListingPages: cli.MaxPages,
	}
	deps.Navigation = &crawl.NavigationCrawler{
		Source: &crawl.PageSource{
			Fetcher:     fetcher,
			Cache:       cache,
			Limiter:     crawl.NewLimiter(cli.Delay),
			RetryDelays: retryDelays,
		},
		Content:   extractor,
		Converter: htmltomarkdown.NewConverter(),
	}

	return kongCtx.Run(deps)
}
