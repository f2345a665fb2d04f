// Package firecrawl provides an alaskavn.Fetcher backed by the Firecrawl
// scrape API. It is used as a fallback when direct HTTP fetching fails,
// since the managed service handles anti-bot challenges on our behalf.
package firecrawl

import (
	"context"
	"time"

	"github.com/fwojciec/alaskavn"
	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds a single scrape request. Firecrawl renders pages
// server-side so requests take noticeably longer than direct fetches.
const DefaultTimeout = 60 * time.Second

// Ensure Fetcher implements alaskavn.Fetcher at compile time.
var _ alaskavn.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML through the Firecrawl /v1/scrape endpoint.
type Fetcher struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL overrides the Firecrawl API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.SetTimeout(d)
	}
}

// NewFetcher creates a Firecrawl-backed Fetcher authenticated with apiKey.
func NewFetcher(apiKey string, opts ...Option) *Fetcher {
	client := resty.New()
	client.SetTimeout(DefaultTimeout)

	f := &Fetcher{
		client:  client,
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML string `json:"html"`
	} `json:"data"`
	Error string `json:"error"`
}

// Fetch scrapes the given URL through Firecrawl and returns the raw HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.apiKey == "" {
		return "", alaskavn.Errorf(alaskavn.EINVALID, "firecrawl API key is required")
	}

	var result scrapeResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetAuthToken(f.apiKey).
		SetBody(scrapeRequest{URL: url, Formats: []string{"html"}}).
		SetResult(&result).
		Post(f.baseURL + "/v1/scrape")
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		return "", alaskavn.Errorf(alaskavn.EUNAVAILABLE, "firecrawl: HTTP %d for %s", resp.StatusCode(), url)
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "scrape failed"
		}
		return "", alaskavn.Errorf(alaskavn.EUNAVAILABLE, "firecrawl: %s", msg)
	}
	if result.Data.HTML == "" {
		return "", alaskavn.Errorf(alaskavn.EUNAVAILABLE, "firecrawl: empty HTML for %s", url)
	}

	return result.Data.HTML, nil
}

// Close releases resources. The underlying client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}
