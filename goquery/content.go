package goquery

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/alaskavn"
)

// Length floors for digest fields, in runes. Shorter entries are noise
// (empty list markers, decorative headings) and are skipped.
const (
	minHeadingLen   = 2
	minParagraphLen = 10
	minListItemLen  = 3
)

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// ExtractPageContent builds the full-content digest of a page: title and
// meta description, every heading tagged with its level, paragraphs and
// list items above the noise floor, tables as header+rows structures, all
// images and links, the contact block, and the whitespace-normalized full
// text with its word count.
func ExtractPageContent(doc *Document, scrapedAt time.Time) alaskavn.PageContent {
	content := alaskavn.PageContent{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: metaDescription(doc),
		Headings:        []string{},
		Paragraphs:      []string{},
		Images:          []alaskavn.PageImage{},
		Links:           []alaskavn.PageLink{},
		Lists:           []string{},
		Tables:          []alaskavn.PageTable{},
		ContactInfo:     ExtractContactInfo(doc),
		ScrapedAt:       alaskavn.Timestamp(scrapedAt),
	}

	for _, tag := range headingTags {
		prefix := strings.ToUpper(tag) + ": "
		doc.Find(tag).Each(func(_ int, h *goquery.Selection) {
			text := strings.TrimSpace(h.Text())
			if utf8.RuneCountInString(text) > minHeadingLen {
				content.Headings = append(content.Headings, prefix+text)
			}
		})
	}

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if utf8.RuneCountInString(text) > minParagraphLen {
			content.Paragraphs = append(content.Paragraphs, text)
		}
	})

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if src == "" {
			return
		}
		alt, _ := img.Attr("alt")
		title, _ := img.Attr("title")
		content.Images = append(content.Images, alaskavn.PageImage{
			Src:   doc.ResolveURL(src),
			Alt:   alt,
			Title: title,
		})
	})

	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		text := strings.TrimSpace(link.Text())
		if href == "" || text == "" {
			return
		}
		resolved := doc.ResolveURL(href)
		linkType := "external"
		if doc.IsInternalURL(resolved) {
			linkType = "internal"
		}
		content.Links = append(content.Links, alaskavn.PageLink{
			URL:  resolved,
			Text: text,
			Type: linkType,
		})
	})

	doc.Find("ul li, ol li").Each(func(_ int, item *goquery.Selection) {
		text := strings.TrimSpace(item.Text())
		if utf8.RuneCountInString(text) > minListItemLen {
			content.Lists = append(content.Lists, text)
		}
	})

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		if t := extractTable(table); t != nil {
			content.Tables = append(content.Tables, *t)
		}
	})

	content.FullText = doc.NormalizedText()
	if content.FullText != "" {
		content.WordCount = len(strings.Fields(content.FullText))
	}

	return content
}

func metaDescription(doc *Document) string {
	meta := doc.Find(`meta[name="description"]`).First()
	desc, _ := meta.Attr("content")
	return desc
}

// extractTable flattens a table to its first row (headers) plus the
// remaining non-empty rows. Returns nil for tables with no content.
func extractTable(table *goquery.Selection) *alaskavn.PageTable {
	out := alaskavn.PageTable{Headers: []string{}, Rows: [][]string{}}

	rows := table.Find("tr")
	rows.Each(func(i int, row *goquery.Selection) {
		var cells []string
		empty := true
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			text := strings.TrimSpace(cell.Text())
			if text != "" {
				empty = false
			}
			cells = append(cells, text)
		})
		if i == 0 {
			out.Headers = cells
			return
		}
		if !empty {
			out.Rows = append(out.Rows, cells)
		}
	})

	if len(out.Headers) == 0 && len(out.Rows) == 0 {
		return nil
	}
	return &out
}
