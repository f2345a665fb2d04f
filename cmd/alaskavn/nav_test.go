package main

import (
	"testing"

	"github.com/fwojciec/alaskavn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homeHTML = `<html><body><header>
<a href="/"><img src="/wp-content/uploads/logo.png" alt="Alaska logo"></a>
<nav><ul class="menu">
<li><a href="/ve-chung-toi/">Giới thiệu</a></li>
<li><a href="/lien-he-alaska/">Liên hệ</a></li>
</ul></nav>
</header></body></html>`

func navPageHTML(title string) string {
	return `<html><head><title>` + title + `</title></head><body><h1>` + title + `</h1><p>Nội dung trang ` + title + `.</p></body></html>`
}

func TestNavCmd_Header(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://alaska.vn/": homeHTML,
	}
	deps, stdout, _, captured := testDeps(t, pages)

	cmd := &NavCmd{}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "Scraping header navigation from: https://alaska.vn/")
	assert.Contains(t, out, "Found 2 main navigation items")
	assert.Contains(t, out, "Exported header navigation data to alaska_header_navigation.json")

	assert.Equal(t, "alaska_header_navigation.json", captured.path)
	nav, ok := captured.value.(*alaskavn.HeaderNavigation)
	require.True(t, ok)
	require.Len(t, nav.MainNavigation, 2)
	assert.Equal(t, "Giới thiệu", nav.MainNavigation[0].Name)
}

func TestNavCmd_Full(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://alaska.vn/":                homeHTML,
		"https://alaska.vn/ve-chung-toi/":   navPageHTML("Giới thiệu"),
		"https://alaska.vn/lien-he-alaska/": navPageHTML("Liên hệ"),
	}
	deps, stdout, _, captured := testDeps(t, pages)

	cmd := &NavCmd{Full: true}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "✓ Scraped: https://alaska.vn/ve-chung-toi/")
	assert.Contains(t, out, "Scraping Summary:")
	assert.Contains(t, out, "• Pages scraped: 2")
	assert.Contains(t, out, "• Total words:")
	assert.Contains(t, out, "• Scraping duration:")
	assert.Contains(t, out, "Exported full navigation data to alaska_full_navigation.json")

	assert.Equal(t, "alaska_full_navigation.json", captured.path)
	nav, ok := captured.value.(*alaskavn.FullNavigation)
	require.True(t, ok)
	assert.Equal(t, 2, nav.TotalPagesScraped)
}

func TestNavCmd_ContentAlias(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://alaska.vn/":                homeHTML,
		"https://alaska.vn/ve-chung-toi/":   navPageHTML("Giới thiệu"),
		"https://alaska.vn/lien-he-alaska/": navPageHTML("Liên hệ"),
	}
	deps, _, _, captured := testDeps(t, pages)

	cmd := &NavCmd{Content: true}
	require.NoError(t, cmd.Run(deps))
	assert.Equal(t, "alaska_full_navigation.json", captured.path)
}

func TestContentTotals_ExcludesSubPages(t *testing.T) {
	t.Parallel()

	pages := []alaskavn.NavigationPage{
		{
			Name:    "Giới thiệu",
			Content: alaskavn.PageContent{WordCount: 100, Links: []alaskavn.PageLink{{URL: "https://alaska.vn/"}}},
			SubPages: []alaskavn.NavigationPage{
				{Name: "Tuyển dụng", Content: alaskavn.PageContent{WordCount: 50, Images: []alaskavn.PageImage{{Src: "a.jpg"}}}},
			},
		},
		{Name: "Liên hệ", Content: alaskavn.PageContent{WordCount: 30}},
	}

	words, images, links := contentTotals(pages)
	assert.Equal(t, 130, words)
	assert.Equal(t, 0, images)
	assert.Equal(t, 1, links)
}

func TestNavCmd_SkipsFailedPages(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"https://alaska.vn/":              homeHTML,
		"https://alaska.vn/ve-chung-toi/": navPageHTML("Giới thiệu"),
		// /lien-he-alaska/ deliberately missing.
	}
	deps, stdout, stderr, _ := testDeps(t, pages)

	cmd := &NavCmd{Full: true}
	require.NoError(t, cmd.Run(deps))

	assert.Contains(t, stderr.String(), "✗ Failed to scrape https://alaska.vn/lien-he-alaska/")
	assert.Contains(t, stdout.String(), "• Pages scraped: 1")
}
