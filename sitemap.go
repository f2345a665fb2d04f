package alaskavn

import "context"

// Sitemap discovers product URLs from the site's XML sitemaps.
// Implementations return an empty slice (not nil, not an error) when the
// site exposes no sitemap; the crawl driver then falls back to listing
// pagination.
type Sitemap interface {
	DiscoverProductURLs(ctx context.Context) ([]string, error)
}
