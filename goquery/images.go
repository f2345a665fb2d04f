package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractImages collects product image URLs: every <img> source with an
// allowed file extension, excluding filenames containing a deny-listed
// keyword (site chrome like logos and banners). URLs are resolved to
// absolute form and de-duplicated preserving first-seen order.
func ExtractImages(doc *Document) []string {
	var images []string
	seen := map[string]bool{}

	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" || !hasAllowedExtension(src) || hasDeniedKeyword(src) {
			return
		}
		resolved := doc.ResolveURL(src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		images = append(images, resolved)
	})

	return images
}

func hasAllowedExtension(src string) bool {
	lower := strings.ToLower(src)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func hasDeniedKeyword(src string) bool {
	lower := strings.ToLower(src)
	for _, word := range imageDenyWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
