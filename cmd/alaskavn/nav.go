package main

import (
	"fmt"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/crawl"
)

// Run executes the nav command.
func (c *NavCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Scraping header navigation from: %s\n", alaskavn.HomeURL)

	if c.Full || c.Content {
		return c.runFull(deps)
	}
	return c.runHeader(deps)
}

func (c *NavCmd) runHeader(deps *Dependencies) error {
	nav, err := deps.Navigation.ScrapeHeader(deps.Ctx)
	if err != nil {
		return fmt.Errorf("scraping header navigation: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Found %d main navigation items\n", len(nav.MainNavigation))

	out := c.Out
	if out == "" {
		out = "alaska_header_navigation.json"
	}
	if err := deps.Writer.Write(nav, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(deps.Stdout, "Exported header navigation data to %s\n", out)

	return nil
}

func (c *NavCmd) runFull(deps *Dependencies) error {
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "✓ Scraped: %s\n", crawl.TruncateURL(event.URL, progressURLWidth))
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "✗ Failed to scrape %s\n", crawl.TruncateURL(event.URL, progressURLWidth))
		}
	}

	nav, err := deps.Navigation.ScrapeFull(deps.Ctx, progress)
	if err != nil {
		return fmt.Errorf("scraping full navigation: %w", err)
	}

	words, images, links := contentTotals(nav.NavigationPages)
	fmt.Fprintln(deps.Stdout, "Scraping Summary:")
	fmt.Fprintf(deps.Stdout, "• Pages scraped: %d\n", nav.TotalPagesScraped)
	fmt.Fprintf(deps.Stdout, "• Total words: %d\n", words)
	fmt.Fprintf(deps.Stdout, "• Total images: %d\n", images)
	fmt.Fprintf(deps.Stdout, "• Total links: %d\n", links)
	fmt.Fprintf(deps.Stdout, "• Scraping duration: %.2f seconds\n", nav.ScrapingDuration)

	out := c.Out
	if out == "" {
		out = "alaska_full_navigation.json"
	}
	if err := deps.Writer.Write(nav, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(deps.Stdout, "Exported full navigation data to %s\n", out)

	return nil
}

// contentTotals sums the word, image, and link counts of the main
// navigation pages. Sub-pages are excluded from the summary even though
// they appear in the output file.
func contentTotals(pages []alaskavn.NavigationPage) (words, images, links int) {
	for _, page := range pages {
		words += page.Content.WordCount
		images += len(page.Content.Images)
		links += len(page.Content.Links)
	}
	return words, images, links
}
