package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/alaskavn/mock"
	alaskaslog "github.com/fwojciec/alaskavn/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemap_DiscoverProductURLs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Sitemap{
		DiscoverProductURLsFn: func(ctx context.Context) ([]string, error) {
			return []string{
				"https://alaska.vn/tu-dong-alaska-hb-550/",
				"https://alaska.vn/tu-mat-alaska-lc-233/",
			}, nil
		},
	}

	sm := alaskaslog.NewLoggingSitemap(inner, logger)
	urls, err := sm.DiscoverProductURLs(context.Background())

	require.NoError(t, err)
	assert.Len(t, urls, 2)
	output := buf.String()
	assert.Contains(t, output, "sitemap discovery")
	assert.Contains(t, output, "count=2")
}
