package goquery_test

import (
	"testing"
	"time"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/goquery"
	"github.com/fwojciec/alaskavn/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	t.Parallel()

	t.Run("prefers the first matching title selector", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<h1>Tủ mát Alaska LC-535C</h1><div class="product-title">khác</div>`)
		assert.Equal(t, "Tủ mát Alaska LC-535C", goquery.ExtractName(doc))
	})

	t.Run("falls back to the page title trimmed at separators", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<head><title>Tủ mát LC 535C | Alaska Việt Nam</title></head><body><p>x</p></body>`)
		assert.Equal(t, "Tủ mát LC 535C", goquery.ExtractName(doc))
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>x</p>")
		assert.Equal(t, "", goquery.ExtractName(doc))
	})
}

func TestExtractCategory(t *testing.T) {
	t.Parallel()

	t.Run("uses the last breadcrumb link", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<nav class="breadcrumb">
			<a href="/">Trang chủ</a>
			<a href="/tu-dong/">Tủ đông</a>
		</nav>`)
		assert.Equal(t, "Tủ đông", goquery.ExtractCategory(doc))
	})

	t.Run("ignores a breadcrumb with only the home link", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, `<nav class="breadcrumb"><a href="/">Trang chủ</a></nav>`)
		assert.Equal(t, "", goquery.ExtractCategory(doc))
	})

	t.Run("falls back to title keywords", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<head><title>Tủ mát LC-535C</title></head>")
		assert.Equal(t, "Tủ mát", goquery.ExtractCategory(doc))
	})
}

func TestExtractMSP(t *testing.T) {
	t.Parallel()

	t.Run("reads an explicit MSP label", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>MSP: LC-535C</p>")
		assert.Equal(t, "LC-535C", goquery.ExtractMSP(doc, "https://alaska.vn/tu-mat-lc-535c/"))
	})

	t.Run("recovers the model code from the URL slug", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>no code here</p>")
		assert.Equal(t, "LC-535C", goquery.ExtractMSP(doc, "https://alaska.vn/tu-mat-lc-535c/"))
	})

	t.Run("returns empty when neither source matches", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>no code here</p>")
		assert.Equal(t, "", goquery.ExtractMSP(doc, "https://alaska.vn/gioi-thieu/"))
	})
}

func TestProductExtractor(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Tủ mát LC 535C | Alaska</title></head><body>
		<h1>Tủ mát Alaska LC-535C</h1>
		<nav class="breadcrumb"><a href="/">Trang chủ</a><a href="/tu-mat/">Tủ mát</a></nav>
		<p>MSP: LC-535C</p>
		<p>MIỀN BẮC: 12,345,000 VNĐ</p>
		<p>Dung tích: 535 lít</p>
		<ul class="features"><li>Làm lạnh nhanh với dàn lạnh đồng</li></ul>
		<div class="product-description">Tủ mát Alaska dung tích lớn cho cửa hàng.</div>
		<img src="/uploads/lc-535c.jpg">
	</body></html>`

	t.Run("assembles a full record", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, page)
		now := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
		e := &goquery.ProductExtractor{Now: func() time.Time { return now }}

		p := e.Extract(doc, page, "https://alaska.vn/tu-mat-lc-535c/")
		require.NoError(t, p.Validate())
		assert.Equal(t, "https://alaska.vn/tu-mat-lc-535c/", p.URL)
		assert.Equal(t, "Tủ mát Alaska LC-535C", p.Name)
		assert.Equal(t, "Tủ mát", p.Category)
		assert.Equal(t, "LC-535C", p.MSP)
		assert.Equal(t, "12,345,000 VNĐ", p.Prices["MIỀN BẮC"])
		assert.Equal(t, "535 lít", p.Specifications["Dung tích"])
		assert.Contains(t, p.Features, "Làm lạnh nhanh với dàn lạnh đồng")
		assert.Equal(t, "Tủ mát Alaska dung tích lớn cho cửa hàng.", p.Description)
		assert.Equal(t, []string{"https://alaska.vn/uploads/lc-535c.jpg"}, p.Images)
		assert.Equal(t, "2025-08-30 10:00:00", p.ScrapedAt)
	})

	t.Run("uses main-content extraction as the last description strategy", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<h1>Tủ đông</h1><p>thân trang</p>")
		e := &goquery.ProductExtractor{
			Content: &mock.ContentExtractor{
				ExtractFn: func(html string) (*alaskavn.ExtractResult, error) {
					return &alaskavn.ExtractResult{ContentText: "nội dung chính"}, nil
				},
			},
		}

		p := e.Extract(doc, "<html></html>", "https://alaska.vn/tu-dong-x/")
		assert.Equal(t, "nội dung chính", p.Description)
	})

	t.Run("missing fields default to empty values", func(t *testing.T) {
		t.Parallel()
		doc := parseDoc(t, "<p>hầu như trống</p>")
		e := &goquery.ProductExtractor{}

		p := e.Extract(doc, "", "https://alaska.vn/x/")
		assert.Empty(t, p.Name)
		assert.Empty(t, p.Prices)
		assert.Empty(t, p.Specifications)
		assert.Empty(t, p.Features)
		assert.Empty(t, p.Images)
		assert.NotEmpty(t, p.ScrapedAt)
	})
}
