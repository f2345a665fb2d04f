package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter enforces a fixed delay between successive requests using a
// token bucket with burst 1. The first Wait returns immediately; each
// subsequent Wait blocks until the delay has elapsed.
type Limiter struct {
	l *rate.Limiter
}

// NewLimiter creates a Limiter with the given inter-request delay.
// A zero or negative delay yields a limiter that never blocks.
func NewLimiter(delay time.Duration) *Limiter {
	if delay <= 0 {
		return &Limiter{}
	}
	return &Limiter{l: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the delay allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	if l.l == nil {
		return ctx.Err()
	}
	return l.l.Wait(ctx)
}
