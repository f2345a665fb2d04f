package alaskavn

import "strings"

// Product is one extraction record for a product page. Field values that
// fail their acceptance filter are never stored; missing fields default to
// empty strings, empty slices, or empty maps rather than being omitted.
type Product struct {
	URL            string            `json:"url"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	MSP            string            `json:"msp"`
	Prices         map[string]string `json:"prices"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	ScrapedAt      string            `json:"scraped_at"`
}

// Validate returns an error if the product record is structurally invalid.
func (p *Product) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "product URL required")
	}
	if !strings.HasPrefix(p.URL, "http://") && !strings.HasPrefix(p.URL, "https://") {
		return Errorf(EINVALID, "product URL must be absolute: %s", p.URL)
	}
	return nil
}

// NavigationItem is one entry of the site's header navigation menu.
// SubItems holds the dropdown entries for menus that have one; the nesting
// never goes deeper than one level.
type NavigationItem struct {
	Name     string           `json:"name"`
	URL      string           `json:"url"`
	SubItems []NavigationItem `json:"sub_items"`
}

// SocialLink is a social media link found in the page header.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Text     string `json:"text"`
}

// HeaderElements holds header content other than the navigation menu.
type HeaderElements struct {
	LogoURL         string            `json:"logo_url"`
	LogoLink        string            `json:"logo_link"`
	SocialLinks     []SocialLink      `json:"social_links"`
	LanguageOptions []string          `json:"language_options"`
	ContactInfo     map[string]string `json:"contact_info"`
}

// HeaderNavigation is the output record of a shallow navigation scrape.
type HeaderNavigation struct {
	MainNavigation []NavigationItem `json:"main_navigation"`
	HeaderElements HeaderElements   `json:"header_elements"`
	ScrapedAt      string           `json:"scraped_at"`
	SourceURL      string           `json:"source_url"`
}

// PageImage is an image reference collected by the page digest.
type PageImage struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// PageLink is a hyperlink collected by the page digest. Type is "internal"
// when the link resolves under the base origin, "external" otherwise.
type PageLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// PageTable is a table flattened to a header row plus data rows.
type PageTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// PageContent is the full-content digest of a single page.
type PageContent struct {
	Title           string            `json:"title"`
	MetaDescription string            `json:"meta_description"`
	Headings        []string          `json:"headings"`
	Paragraphs      []string          `json:"paragraphs"`
	Images          []PageImage       `json:"images"`
	Links           []PageLink        `json:"links"`
	Lists           []string          `json:"lists"`
	Tables          []PageTable       `json:"tables"`
	ContactInfo     map[string]string `json:"contact_info"`
	FullText        string            `json:"full_text"`
	WordCount       int               `json:"word_count"`
	ContentMarkdown string            `json:"content_markdown,omitempty"`
	ScrapedAt       string            `json:"scraped_at"`
}

// NavigationPage pairs a navigation item with its page digest.
// SubPages mirror the item's sub-menu; the recursion stops there.
type NavigationPage struct {
	Name     string           `json:"name"`
	URL      string           `json:"url"`
	Content  PageContent      `json:"content"`
	SubPages []NavigationPage `json:"sub_pages"`
}

// FullNavigation is the output record of a full-content navigation scrape.
type FullNavigation struct {
	NavigationPages   []NavigationPage `json:"navigation_pages"`
	HeaderElements    HeaderElements   `json:"header_elements"`
	TotalPagesScraped int              `json:"total_pages_scraped"`
	ScrapingDuration  float64          `json:"scraping_duration"`
	ScrapedAt         string           `json:"scraped_at"`
	SourceURL         string           `json:"source_url"`
}
