package crawl

import (
	"context"
	"errors"

	"github.com/fwojciec/alaskavn"
)

// Ensure FallbackFetcher implements alaskavn.Fetcher.
var _ alaskavn.Fetcher = (*FallbackFetcher)(nil)

// FallbackFetcher tries the primary fetcher first and retries through the
// fallback when the primary fails. A nil Fallback makes it equivalent to
// the primary alone.
type FallbackFetcher struct {
	Primary  alaskavn.Fetcher
	Fallback alaskavn.Fetcher
}

// Fetch retrieves the URL through the primary fetcher, falling back on error.
func (f *FallbackFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, err := f.Primary.Fetch(ctx, url)
	if err == nil {
		return html, nil
	}
	if f.Fallback == nil {
		return "", err
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return f.Fallback.Fetch(ctx, url)
}

// Close closes both fetchers.
func (f *FallbackFetcher) Close() error {
	err := f.Primary.Close()
	if f.Fallback != nil {
		err = errors.Join(err, f.Fallback.Close())
	}
	return err
}
