package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/crawl"
	"github.com/fwojciec/alaskavn/goquery"
	"github.com/fwojciec/alaskavn/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `<html>
<head><title>Tủ mát Alaska LC-535C | Alaska</title></head>
<body>
<h1 class="product-title">Tủ mát Alaska LC-535C</h1>
<nav class="breadcrumb"><a href="/">Trang chủ</a><a href="/category/tu-mat/">Tủ mát</a></nav>
<div>MSP: LC-535C</div>
<div class="price">MIỀN NAM: 9.900.000 VNĐ</div>
</body>
</html>`

// testDeps builds Dependencies backed by an in-memory fetcher and a
// record-capturing writer.
func testDeps(t *testing.T, pages map[string]string) (*Dependencies, *bytes.Buffer, *bytes.Buffer, *capturedWrite) {
	t.Helper()

	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", alaskavn.Errorf(alaskavn.EUNAVAILABLE, "HTTP 404 for %s", url)
			}
			return html, nil
		},
	}

	var stdout, stderr bytes.Buffer
	captured := &capturedWrite{}

	fixedNow := func() time.Time {
		return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	}

	deps := &Dependencies{
		Ctx:    context.Background(),
		Stdout: &stdout,
		Stderr: &stderr,
		Products: &crawl.ProductCrawler{
			Sitemap: &mock.Sitemap{
				DiscoverProductURLsFn: func(ctx context.Context) ([]string, error) {
					return []string{"https://alaska.vn/tu-mat-lc-535c/"}, nil
				},
			},
			Listing:   &crawl.PageSource{Fetcher: fetcher},
			Products:  &crawl.PageSource{Fetcher: fetcher},
			Extractor: &goquery.ProductExtractor{Now: fixedNow},
		},
		Navigation: &crawl.NavigationCrawler{
			Source: &crawl.PageSource{Fetcher: fetcher},
			Now:    fixedNow,
		},
		Writer: &mock.RecordWriter{
			WriteFn: func(v any, path string) error {
				captured.value = v
				captured.path = path
				return nil
			},
		},
	}
	return deps, &stdout, &stderr, captured
}

type capturedWrite struct {
	value any
	path  string
}

func TestProductsCmd_Test(t *testing.T) {
	t.Parallel()

	t.Run("scrapes the sample URLs", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://alaska.vn/tu-mat-lc-535c/":        productHTML,
			"https://alaska.vn/tu-mat-2-canh-lc-800c/": productHTML,
		}
		deps, stdout, _, captured := testDeps(t, pages)

		cmd := &ProductsCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Testing with sample products...")
		assert.Contains(t, stdout.String(), "✓ Extracted: Tủ mát Alaska LC-535C (MSP: LC-535C)")
		assert.Contains(t, stdout.String(), "Exported 2 products to test_products.json")

		assert.Equal(t, "test_products.json", captured.path)
		products, ok := captured.value.([]alaskavn.Product)
		require.True(t, ok)
		require.Len(t, products, 2)
		assert.Equal(t, "https://alaska.vn/tu-mat-lc-535c/", products[0].URL)
	})

	t.Run("skips the write when nothing is extracted", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr, captured := testDeps(t, nil)

		cmd := &ProductsCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "✗ Failed to extract data from https://alaska.vn/tu-mat-lc-535c/")
		assert.Contains(t, stderr.String(), "No products extracted.")
		assert.Empty(t, captured.path)
	})

	t.Run("honors the output override", func(t *testing.T) {
		t.Parallel()

		pages := map[string]string{
			"https://alaska.vn/tu-mat-lc-535c/":        productHTML,
			"https://alaska.vn/tu-mat-2-canh-lc-800c/": productHTML,
		}
		deps, _, _, captured := testDeps(t, pages)

		cmd := &ProductsCmd{Out: "out/products.json"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "out/products.json", captured.path)
	})
}

func TestProductsCmd_TruncatesLongURLsInProgress(t *testing.T) {
	t.Parallel()

	longURL := "https://alaska.vn/" + strings.Repeat("tu-dong-cong-nghiep-", 5) + "hb-1500/"
	deps, _, stderr, _ := testDeps(t, nil)
	deps.Products.Sitemap = &mock.Sitemap{
		DiscoverProductURLsFn: func(ctx context.Context) ([]string, error) {
			return []string{longURL}, nil
		},
	}

	cmd := &ProductsCmd{Full: true}
	require.NoError(t, cmd.Run(deps))

	out := stderr.String()
	assert.NotContains(t, out, longURL)
	assert.Contains(t, out, "✗ Failed to extract data from ..."+longURL[len(longURL)-progressURLWidth+3:])
}

func TestProductsCmd_Full(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://alaska.vn/tu-mat-lc-535c/": productHTML,
	}
	deps, stdout, _, captured := testDeps(t, pages)

	cmd := &ProductsCmd{Full: true}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "Starting full Alaska.vn product scraping...")
	assert.Contains(t, out, "Found 1 total products")
	assert.Contains(t, out, "Exported 1 products to alaska_products.json")
	assert.Contains(t, out, "Scraping completed! Total products: 1")
	assert.Equal(t, "alaska_products.json", captured.path)
}
