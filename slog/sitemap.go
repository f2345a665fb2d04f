package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alaskavn"
)

// Ensure LoggingSitemap implements alaskavn.Sitemap.
var _ alaskavn.Sitemap = (*LoggingSitemap)(nil)

// LoggingSitemap wraps a Sitemap with debug logging.
type LoggingSitemap struct {
	next   alaskavn.Sitemap
	logger *slog.Logger
}

// NewLoggingSitemap creates a new LoggingSitemap.
func NewLoggingSitemap(next alaskavn.Sitemap, logger *slog.Logger) *LoggingSitemap {
	return &LoggingSitemap{next: next, logger: logger}
}

// DiscoverProductURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemap) DiscoverProductURLs(ctx context.Context) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverProductURLs(ctx)
}
