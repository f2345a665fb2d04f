package mock

import (
	"context"

	"github.com/fwojciec/alaskavn"
)

var _ alaskavn.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of alaskavn.PageCache.
type PageCache struct {
	GetFn   func(ctx context.Context, url string) (*alaskavn.CachedPage, error)
	PutFn   func(ctx context.Context, page *alaskavn.CachedPage) error
	CloseFn func() error
}

func (c *PageCache) Get(ctx context.Context, url string) (*alaskavn.CachedPage, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, page *alaskavn.CachedPage) error {
	return c.PutFn(ctx, page)
}

func (c *PageCache) Close() error {
	if c.CloseFn == nil {
		return nil
	}
	return c.CloseFn()
}
