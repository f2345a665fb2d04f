package mock

import (
	"context"

	"github.com/fwojciec/alaskavn"
)

var _ alaskavn.Sitemap = (*Sitemap)(nil)

// Sitemap is a mock implementation of alaskavn.Sitemap.
type Sitemap struct {
	DiscoverProductURLsFn func(ctx context.Context) ([]string, error)
}

func (s *Sitemap) DiscoverProductURLs(ctx context.Context) ([]string, error) {
	return s.DiscoverProductURLsFn(ctx)
}
