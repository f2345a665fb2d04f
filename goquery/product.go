package goquery

import (
	"strings"
	"time"

	"github.com/fwojciec/alaskavn"
)

// maxDescriptionLen caps the description field, in runes.
const maxDescriptionLen = 1000

// ProductExtractor assembles one Product record per page by running the
// field extractors in a fixed order: identity fields first, then the
// structured fields. Content, when set, provides the last-resort
// description strategy (main-content extraction); it is optional.
type ProductExtractor struct {
	Content alaskavn.ContentExtractor

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Extract builds the product record for a page fetched from productURL.
// Extraction never fails: fields that match nothing default to empty
// values.
func (e *ProductExtractor) Extract(doc *Document, rawHTML string, productURL string) *alaskavn.Product {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	return &alaskavn.Product{
		URL:            productURL,
		Name:           ExtractName(doc),
		Category:       ExtractCategory(doc),
		MSP:            ExtractMSP(doc, productURL),
		Prices:         ExtractPrices(doc),
		Specifications: ExtractSpecifications(doc),
		Features:       ExtractFeatures(doc),
		Description:    e.extractDescription(doc, rawHTML),
		Images:         ExtractImages(doc),
		ScrapedAt:      alaskavn.Timestamp(now()),
	}
}

// ExtractName returns the product name: the first non-empty match in the
// title selector chain, else the page title trimmed at the first "|" or "-"
// separator.
func ExtractName(doc *Document) string {
	strategies := make([]Strategy, 0, len(nameSelectors)+1)
	for _, sel := range nameSelectors {
		strategies = append(strategies, selectorText(sel))
	}
	strategies = append(strategies, func(doc *Document) []Match {
		title := strings.TrimSpace(doc.Find("title").First().Text())
		if title == "" {
			return nil
		}
		title = strings.SplitN(title, "|", 2)[0]
		title = strings.SplitN(title, "-", 2)[0]
		return []Match{{Value: strings.TrimSpace(title)}}
	})
	return firstAccepted(doc, strategies, nil)
}

// ExtractCategory returns the product category from the last breadcrumb
// link (skipping the "Home" entry), falling back to known category
// keywords in the page title.
func ExtractCategory(doc *Document) string {
	for _, sel := range breadcrumbSelectors {
		crumb := doc.Find(sel).First()
		if crumb.Length() == 0 {
			continue
		}
		links := crumb.Find("a")
		if links.Length() > 1 {
			return strings.TrimSpace(links.Last().Text())
		}
	}

	title := doc.Find("title").First().Text()
	for _, category := range []string{"Tủ mát", "Tủ đông"} {
		if strings.Contains(title, category) {
			return category
		}
	}
	return ""
}

// ExtractMSP returns the product code: an explicit "MSP: <code>" label in
// the page text, else a model code recovered from the URL slug (e.g.
// "tu-mat-lc-535c" → "LC-535C").
func ExtractMSP(doc *Document, productURL string) string {
	if m := mspPattern.FindStringSubmatch(doc.Text()); m != nil {
		return m[1]
	}

	slug := urlSlugPattern.FindStringSubmatch(productURL)
	if slug == nil {
		return ""
	}
	if code := slugModelCodeRE.FindStringSubmatch(slug[1]); code != nil {
		return strings.ToUpper(code[1])
	}
	return ""
}

func (e *ProductExtractor) extractDescription(doc *Document, rawHTML string) string {
	strategies := make([]Strategy, 0, len(descriptionSelectors)+1)
	for _, sel := range descriptionSelectors {
		strategies = append(strategies, selectorText(sel))
	}
	if e.Content != nil {
		strategies = append(strategies, func(*Document) []Match {
			result, err := e.Content.Extract(rawHTML)
			if err != nil || result == nil {
				return nil
			}
			return []Match{{Value: strings.TrimSpace(result.ContentText)}}
		})
	}
	return truncateRunes(firstAccepted(doc, strategies, nil), maxDescriptionLen)
}

// selectorText is a scalar strategy returning the trimmed text of the
// first element matching the selector.
func selectorText(selector string) Strategy {
	return func(doc *Document) []Match {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return nil
		}
		return []Match{{Value: strings.TrimSpace(sel.Text())}}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
