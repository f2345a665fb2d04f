package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/alaskavn"
)

// PageSource loads pages through an optional cache and rate limiter.
// A cache hit skips both the network fetch and the inter-request delay,
// so repeated runs against a warm cache finish quickly.
type PageSource struct {
	Fetcher     alaskavn.Fetcher
	Cache       alaskavn.PageCache // optional
	Limiter     *Limiter           // optional
	RetryDelays []time.Duration    // optional; nil disables retries
}

// Load returns the HTML for url, consulting the cache first.
func (s *PageSource) Load(ctx context.Context, url string) (string, error) {
	if s.Cache != nil {
		page, err := s.Cache.Get(ctx, url)
		if err == nil {
			return page.HTML, nil
		}
		if alaskavn.ErrorCode(err) != alaskavn.ENOTFOUND {
			return "", err
		}
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	fetch := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, url, fetch, s.RetryDelays)
	if err != nil {
		return "", err
	}

	if s.Cache != nil {
		// A failed cache write costs a refetch next run, nothing more.
		_ = s.Cache.Put(ctx, &alaskavn.CachedPage{URL: url, HTML: html})
	}

	return html, nil
}
