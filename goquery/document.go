// Package goquery implements the extraction pipeline for Alaska.vn pages.
// It wraps a parsed HTML tree with the query operations the field extractors
// need and hosts the per-field pattern tables and extractors.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/alaskavn"
	"golang.org/x/net/html"
)

// blockTags are elements that terminate a line when flattening the document
// to plain text. The regex pattern tables anchor on line boundaries, so the
// flattened text must preserve them.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "div": true, "dd": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Document is a parsed HTML page with a base URL for resolving relative
// links. It is immutable after parsing; all extractors treat it as read-only.
type Document struct {
	doc  *goquery.Document
	base *url.URL

	text string // lazily built flattened text
}

// Parse parses raw HTML into a Document. Relative URLs found during
// extraction are resolved against baseURL.
func Parse(rawHTML string, baseURL string) (*Document, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, alaskavn.Errorf(alaskavn.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, alaskavn.Errorf(alaskavn.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, base: base}, nil
}

// Find runs a CSS selector query against the document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Text returns the document flattened to plain text with line breaks at
// block-element boundaries. Script and style contents are excluded. The
// result is cached after the first call.
func (d *Document) Text() string {
	if d.text == "" {
		var b strings.Builder
		for _, n := range d.doc.Nodes {
			flattenNode(&b, n)
		}
		d.text = b.String()
	}
	return d.text
}

// NormalizedText returns the flattened text with all whitespace runs
// collapsed to single spaces.
func (d *Document) NormalizedText() string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(d.Text(), " "))
}

// ResolveURL resolves href against the document's base URL and returns the
// absolute form. Returns an empty string when href cannot be parsed.
func (d *Document) ResolveURL(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return d.base.ResolveReference(ref).String()
}

// IsInternalURL reports whether an absolute URL points at the document's
// base origin.
func (d *Document) IsInternalURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Host == d.base.Host
}

// flattenNode appends the text content of n to b, inserting newlines at
// block-element boundaries.
func flattenNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" || n.Data == "noscript" {
			return
		}
	}

	isBlock := n.Type == html.ElementNode && blockTags[n.Data]
	if isBlock {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flattenNode(b, c)
	}
	if isBlock {
		b.WriteString("\n")
	}
}
