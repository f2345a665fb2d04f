package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/goquery"
)

// NavigationCrawler scrapes the site's header navigation, either shallowly
// (menu structure and header elements from the homepage) or fully (every
// menu page and its sub-pages, recursion depth exactly two).
type NavigationCrawler struct {
	Source *PageSource

	// Content and Converter, when both set, add a Markdown digest of each
	// page's main content to the full-content scrape.
	Content   alaskavn.ContentExtractor
	Converter alaskavn.Converter

	// Now is used for output timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (c *NavigationCrawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// ScrapeHeader performs a shallow navigation scrape of the homepage.
func (c *NavigationCrawler) ScrapeHeader(ctx context.Context) (*alaskavn.HeaderNavigation, error) {
	doc, err := c.loadDoc(ctx, alaskavn.HomeURL)
	if err != nil {
		return nil, err
	}

	return &alaskavn.HeaderNavigation{
		MainNavigation: goquery.ExtractMenu(doc),
		HeaderElements: goquery.ExtractHeaderElements(doc),
		ScrapedAt:      alaskavn.Timestamp(c.now()),
		SourceURL:      alaskavn.HomeURL,
	}, nil
}

// ScrapeFull performs a full-content navigation scrape: the homepage menu
// is extracted first, then every menu page and each of its sub-pages is
// fetched and digested. Pages that fail to fetch are omitted from the
// output rather than recorded as placeholders.
func (c *NavigationCrawler) ScrapeFull(ctx context.Context, progress ProgressFunc) (*alaskavn.FullNavigation, error) {
	begin := c.now()

	doc, err := c.loadDoc(ctx, alaskavn.HomeURL)
	if err != nil {
		return nil, err
	}

	menu := goquery.ExtractMenu(doc)
	header := goquery.ExtractHeaderElements(doc)

	var pages []alaskavn.NavigationPage
	scraped := 0

	for _, item := range menu {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		page, err := c.scrapePage(ctx, item.Name, item.URL)
		if err != nil {
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: item.URL, Error: err})
			}
			continue
		}
		scraped++
		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, URL: item.URL})
		}

		for _, sub := range item.SubItems {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			subPage, err := c.scrapePage(ctx, sub.Name, sub.URL)
			if err != nil {
				if progress != nil {
					progress(ProgressEvent{Type: ProgressFailed, URL: sub.URL, Error: err})
				}
				continue
			}
			scraped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, URL: sub.URL})
			}
			page.SubPages = append(page.SubPages, *subPage)
		}

		pages = append(pages, *page)
	}

	return &alaskavn.FullNavigation{
		NavigationPages:   pages,
		HeaderElements:    header,
		TotalPagesScraped: scraped,
		ScrapingDuration:  time.Since(begin).Seconds(),
		ScrapedAt:         alaskavn.Timestamp(begin),
		SourceURL:         alaskavn.HomeURL,
	}, nil
}

// scrapePage fetches one navigation page and builds its content digest.
func (c *NavigationCrawler) scrapePage(ctx context.Context, name, url string) (*alaskavn.NavigationPage, error) {
	html, err := c.Source.Load(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.Parse(html, alaskavn.BaseURL)
	if err != nil {
		return nil, err
	}

	content := goquery.ExtractPageContent(doc, c.now())

	if c.Content != nil && c.Converter != nil {
		if extracted, err := c.Content.Extract(html); err == nil && extracted.ContentHTML != "" {
			if md, err := c.Converter.Convert(extracted.ContentHTML); err == nil {
				content.ContentMarkdown = md
			}
		}
	}

	return &alaskavn.NavigationPage{
		Name:    name,
		URL:     url,
		Content: content,
	}, nil
}

func (c *NavigationCrawler) loadDoc(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := c.Source.Load(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.Parse(html, alaskavn.BaseURL)
}
