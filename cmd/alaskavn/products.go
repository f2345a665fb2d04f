package main

import (
	"fmt"

	"github.com/fwojciec/alaskavn/crawl"
)

// progressURLWidth keeps progress lines on one terminal row.
const progressURLWidth = 72

// Sample product URLs scraped in the default (test) mode.
var testURLs = []string{
	"https://alaska.vn/tu-mat-lc-535c/",
	"https://alaska.vn/tu-mat-2-canh-lc-800c/",
}

// Run executes the products command.
func (c *ProductsCmd) Run(deps *Dependencies) error {
	if c.Full {
		return c.runFull(deps)
	}
	return c.runTest(deps)
}

func (c *ProductsCmd) runFull(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Starting full Alaska.vn product scraping...")

	urls, err := deps.Products.DiscoverURLs(deps.Ctx)
	if err != nil {
		return fmt.Errorf("discovering product URLs: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Found %d total products\n", len(urls))

	products, err := deps.Products.Crawl(deps.Ctx, urls, c.progress(deps))
	if err != nil {
		return err
	}

	out := c.Out
	if out == "" {
		out = "alaska_products.json"
	}
	if err := deps.Writer.Write(products, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), out)
	fmt.Fprintf(deps.Stdout, "Scraping completed! Total products: %d\n", len(products))

	return nil
}

func (c *ProductsCmd) runTest(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Testing with sample products...")

	products, err := deps.Products.Crawl(deps.Ctx, testURLs, c.progress(deps))
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(deps.Stderr, "No products extracted.")
		return nil
	}

	out := c.Out
	if out == "" {
		out = "test_products.json"
	}
	if err := deps.Writer.Write(products, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(deps.Stdout, "Exported %d products to %s\n", len(products), out)

	return nil
}

func (c *ProductsCmd) progress(deps *Dependencies) crawl.ProgressFunc {
	return func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			if event.Total > 0 {
				fmt.Fprintf(deps.Stdout, "Processing %d products\n", event.Total)
			}
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "✓ Extracted: %s (MSP: %s)\n", event.Product.Name, event.Product.MSP)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "✗ Failed to extract data from %s\n", crawl.TruncateURL(event.URL, progressURLWidth))
		}
	}
}
