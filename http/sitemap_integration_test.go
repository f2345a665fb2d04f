//go:build integration

package http_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/alaskavn"
	alaskahttp "github.com/fwojciec/alaskavn/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap_Integration_AlaskaVN(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	sm := alaskahttp.NewSitemap(nil, alaskavn.BaseURL)

	urls, err := sm.DiscoverProductURLs(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, urls, "expected at least some product URLs from alaska.vn sitemap")
	t.Logf("Found %d product URLs from alaska.vn sitemap", len(urls))

	for _, u := range urls[:min(5, len(urls))] {
		t.Logf("  - %s", u)
		assert.True(t, strings.HasPrefix(u, alaskavn.BaseURL), "URL should be on alaska.vn")
	}
}
