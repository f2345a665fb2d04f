package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Listing-page link filtering: hrefs containing any of these fragments are
// never product links.
var listingSkipFragments = []string{"/page/", "/category/", "/tag/", "javascript:", "mailto:", "tel:", "#"}

// productSlugRE matches the site's product permalink shape: a single slug
// directly under the root.
var productSlugRE = regexp.MustCompile(`^/[a-zA-Z0-9-]+/$`)

// ExtractProductURLs pulls candidate product URLs out of a listing page:
// every hyperlink whose href looks like a product permalink (root-level
// slug, or any path mentioning "product"), skipping pagination, taxonomy,
// and protocol links. URLs are resolved to absolute form and de-duplicated
// preserving encounter order; the site root itself is excluded.
func ExtractProductURLs(doc *Document) []string {
	var urls []string
	seen := map[string]bool{}
	root := doc.ResolveURL("/")

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if href == "" {
			return
		}
		for _, skip := range listingSkipFragments {
			if strings.Contains(href, skip) {
				return
			}
		}
		if !productSlugRE.MatchString(href) && !strings.Contains(href, "product") {
			return
		}
		resolved := doc.ResolveURL(href)
		if resolved == "" || resolved == root || seen[resolved] {
			return
		}
		seen[resolved] = true
		urls = append(urls, resolved)
	})

	return urls
}
