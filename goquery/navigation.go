package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/alaskavn"
)

// ExtractMenu scans every hyperlink for the target navigation labels.
// A label matches on exact text or substring; labels still missing after
// the text pass are retried against the known URL-path fragments. Each
// matched item gets one level of sub-menu extraction. The result always
// follows the canonical label order, not document order.
func ExtractMenu(doc *Document) []alaskavn.NavigationItem {
	found := map[string]*alaskavn.NavigationItem{}
	links := doc.Find("a[href]")
	if links.Length() == 0 {
		links = doc.Find("a")
	}

	links.Each(func(_ int, link *goquery.Selection) {
		text := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		for _, target := range navTargets {
			if found[target] != nil {
				continue
			}
			if target != text && !strings.Contains(text, target) {
				continue
			}
			found[target] = &alaskavn.NavigationItem{
				Name:     target,
				URL:      resolveNavURL(doc, href),
				SubItems: extractSubMenu(doc, link, target),
			}
			break
		}
	})

	// URL fallback for labels the text pass missed.
	for _, target := range navTargets {
		if found[target] != nil {
			continue
		}
		fragments := navURLFallbacks[target]
		links.EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, _ := link.Attr("href")
			for _, fragment := range fragments {
				if !strings.Contains(href, fragment) {
					continue
				}
				found[target] = &alaskavn.NavigationItem{
					Name:     target,
					URL:      resolveNavURL(doc, href),
					SubItems: extractSubMenu(doc, link, target),
				}
				return false
			}
			return true
		})
	}

	items := make([]alaskavn.NavigationItem, 0, len(navTargets))
	for _, target := range navTargets {
		if found[target] != nil {
			items = append(items, *found[target])
		}
	}
	return items
}

// extractSubMenu finds the dropdown container near a matched navigation
// link and filters its links against the parent's expected sub-labels.
// Containers are probed in a fixed selector priority order; the first one
// that yields any accepted sub-item wins.
func extractSubMenu(doc *Document, link *goquery.Selection, parentName string) []alaskavn.NavigationItem {
	expected, ok := navExpectedSubItems[parentName]
	if !ok {
		return nil
	}

	parent := link.Parent()
	for _, selector := range navSubMenuSelectors {
		submenu := parent.Find(selector).First()
		if submenu.Length() == 0 {
			continue
		}

		var subItems []alaskavn.NavigationItem
		submenu.Find("a[href]").Each(func(_ int, subLink *goquery.Selection) {
			text := strings.TrimSpace(subLink.Text())
			href, _ := subLink.Attr("href")
			for _, want := range expected {
				if strings.Contains(text, want) || (text != "" && strings.Contains(want, text)) {
					subItems = append(subItems, alaskavn.NavigationItem{
						Name: want,
						URL:  doc.ResolveURL(href),
					})
					break
				}
			}
		})

		if len(subItems) > 0 {
			return subItems
		}
	}
	return nil
}

// resolveNavURL makes a navigation href absolute. Already-absolute URLs
// pass through unchanged; anything else (including bare fragments) resolves
// against the base origin.
func resolveNavURL(doc *Document, href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return doc.ResolveURL(href)
}
