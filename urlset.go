package alaskavn

// URLSet tracks URLs seen during one discovery run so the crawl driver
// never emits the same absolute URL twice.
type URLSet interface {
	// Add records a URL. Returns false if the URL has already been seen.
	Add(url string) bool

	// Seen returns true if the URL has been recorded.
	Seen(url string) bool

	// Len returns the number of distinct URLs recorded.
	Len() int
}
