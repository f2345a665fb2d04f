package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/crawl"
)

// Dependencies holds the wired services for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Products   *crawl.ProductCrawler
	Navigation *crawl.NavigationCrawler
	Writer     alaskavn.RecordWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Products ProductsCmd `cmd:"" help:"Scrape product pages to JSON"`
	Nav      NavCmd      `cmd:"" help:"Scrape the site's header navigation to JSON"`

	Timeout   time.Duration `default:"30s" help:"HTTP request timeout"`
	Delay     time.Duration `default:"2s" help:"Delay between product page fetches"`
	PageDelay time.Duration `name:"page-delay" default:"1s" help:"Delay between listing pages"`
	APIKey    string        `name:"api-key" env:"FIRECRAWL_API_KEY" help:"Firecrawl API key for fallback fetching"`
	MaxPages  int           `name:"max-pages" help:"Cap on listing pages when crawling the full catalog"`
	Retry     bool          `help:"Retry failed fetches with increasing delays instead of skipping the URL"`
	Cache     string        `help:"SQLite page cache path (empty disables caching)" type:"path"`
	Config    string        `help:"YAML config file" type:"path"`
	Verbose   bool          `short:"v" help:"Log every fetch"`
}

// ProductsCmd is the "products" subcommand.
type ProductsCmd struct {
	Full bool   `help:"Crawl the entire catalog instead of the sample URLs"`
	Out  string `help:"Output file (default test_products.json, or alaska_products.json with --full)"`
}

// NavCmd is the "nav" subcommand.
type NavCmd struct {
	Full    bool   `help:"Scrape full page content for every navigation entry"`
	Content bool   `help:"Alias for --full"`
	Out     string `help:"Output file (default alaska_header_navigation.json, or alaska_full_navigation.json with --full)"`
}
