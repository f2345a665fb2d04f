package alaskavn

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string

	// ContentText is the plain-text rendition of the main content.
	ContentText string
}

// ContentExtractor extracts main content from HTML pages, removing boilerplate.
// It backs the lowest-priority description strategy: when none of the CSS
// selector probes match, the main-content text is used instead.
type ContentExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter transforms HTML into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
