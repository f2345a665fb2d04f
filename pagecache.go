package alaskavn

import (
	"context"
	"time"
)

// CachedPage is one raw HTML document stored in the page cache.
type CachedPage struct {
	ID          string
	URL         string
	HTML        string
	ContentHash string
	FetchedAt   time.Time
}

// Validate returns an error if the cached page contains invalid fields.
func (p *CachedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "cached page URL required")
	}
	if p.HTML == "" {
		return Errorf(EINVALID, "cached page HTML required")
	}
	return nil
}

// PageCache stores fetched HTML keyed by URL so repeated crawl runs can
// skip the network. Get returns ENOTFOUND for URLs that have never been
// cached.
type PageCache interface {
	Get(ctx context.Context, url string) (*CachedPage, error)
	Put(ctx context.Context, page *CachedPage) error
	Close() error
}
