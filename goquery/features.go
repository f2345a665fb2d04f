package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// ExtractFeatures gathers the product feature list from two sources: list
// items under containers whose class names look feature-related, and
// bullet-marked lines in the flattened page text. Entries outside the
// length window are rejected and the union is de-duplicated; first-seen
// order is kept so output is deterministic, but consumers must not rely on
// any particular ordering.
func ExtractFeatures(doc *Document) []string {
	var features []string
	seen := map[string]bool{}

	add := func(text string) {
		text = strings.TrimSpace(text)
		n := utf8.RuneCountInString(text)
		if n <= minFeatureLen || n >= maxFeatureLen {
			return
		}
		if seen[text] {
			return
		}
		seen[text] = true
		features = append(features, text)
	}

	doc.Find("ul, ol").Each(func(_ int, container *goquery.Selection) {
		class, _ := container.Attr("class")
		if !featureClassRE.MatchString(class) {
			return
		}
		container.Find("li").Each(func(_ int, item *goquery.Selection) {
			add(item.Text())
		})
	})

	text := doc.Text()
	for _, re := range featureBulletPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			add(m[1])
		}
	}

	return features
}
