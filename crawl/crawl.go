// Package crawl provides crawl orchestration for the alaska.vn scraper.
// It coordinates product URL discovery, page fetching, extraction, and
// progress reporting. Pages are processed sequentially; the site is small
// and the fixed inter-request delays dominate the run time anyway.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/bloom"
	"github.com/fwojciec/alaskavn/goquery"
)

// DefaultMaxListingPages caps listing pagination so a pathological or
// hostile listing can never keep the crawl running forever.
const DefaultMaxListingPages = 50

// URLSet sizing for a full catalog crawl.
const (
	expectedURLs      = 10000
	falsePositiveRate = 0.01
)

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl operation. Product is set
// only on ProgressCompleted events.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Product   *alaskavn.Product
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// ProductCrawler discovers product URLs and extracts product records.
type ProductCrawler struct {
	// Sitemap is tried first for URL discovery; listing pagination is the
	// fallback when it is nil or finds nothing.
	Sitemap alaskavn.Sitemap

	// Listing loads product listing pages (short inter-page delay).
	Listing *PageSource

	// Products loads product detail pages (longer delay).
	Products *PageSource

	Extractor *goquery.ProductExtractor

	// MaxListingPages caps pagination. Defaults to DefaultMaxListingPages.
	MaxListingPages int
}

// DiscoverURLs finds product detail page URLs, preferring the sitemap and
// falling back to walking /product/ listing pages. Pagination stops at the
// first page that fails to load or yields no product links; discovery
// itself only errors on context cancellation. The returned slice is
// deduplicated with first-seen order preserved.
func (c *ProductCrawler) DiscoverURLs(ctx context.Context) ([]string, error) {
	if c.Sitemap != nil {
		urls, err := c.Sitemap.DiscoverProductURLs(ctx)
		if err == nil && len(urls) > 0 {
			return dedupURLs(urls), nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	maxPages := c.MaxListingPages
	if maxPages <= 0 {
		maxPages = DefaultMaxListingPages
	}

	var all []string
	for page := 1; page <= maxPages; page++ {
		pageURL := alaskavn.ProductsURL
		if page > 1 {
			pageURL = fmt.Sprintf("%spage/%d/", alaskavn.ProductsURL, page)
		}

		html, err := c.Listing.Load(ctx, pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Past the last page the site 404s; treat any page failure,
			// the first included, as end of listing. A crawl over zero
			// URLs completes with an empty export.
			break
		}

		doc, err := goquery.Parse(html, alaskavn.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing listing page %d: %w", page, err)
		}

		urls := goquery.ExtractProductURLs(doc)
		if len(urls) == 0 {
			break
		}
		all = append(all, urls...)
	}

	return dedupURLs(all), nil
}

// Crawl fetches each product URL and extracts a product record. URLs that
// fail to fetch or parse are skipped, not turned into placeholder records;
// the progress callback receives a ProgressFailed event for each.
func (c *ProductCrawler) Crawl(ctx context.Context, urls []string, progress ProgressFunc) ([]alaskavn.Product, error) {
	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	products := make([]alaskavn.Product, 0, total)
	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return products, err
		}

		product, err := c.crawlOne(ctx, url)
		if err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     total,
					URL:       url,
					Error:     err,
				})
			}
			continue
		}

		products = append(products, *product)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     total,
				URL:       url,
				Product:   product,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return products, nil
}

func (c *ProductCrawler) crawlOne(ctx context.Context, url string) (*alaskavn.Product, error) {
	html, err := c.Products.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.Parse(html, alaskavn.BaseURL)
	if err != nil {
		return nil, err
	}

	return c.Extractor.Extract(doc, html, url), nil
}

// dedupURLs removes duplicates preserving first-seen order.
func dedupURLs(urls []string) []string {
	seen := bloom.NewURLSet(expectedURLs, falsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Add(u) {
			out = append(out, u)
		}
	}
	return out
}
