// Package bloom provides URL deduplication for crawl runs.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/alaskavn"
)

// Ensure URLSet implements alaskavn.URLSet at compile time.
var _ alaskavn.URLSet = (*URLSet)(nil)

// URLSet tracks URLs seen during a crawl. A Bloom filter answers the
// common "never seen" case without a map lookup; a backing map resolves
// the filter's false positives so membership answers stay exact.
type URLSet struct {
	filter *bloom.BloomFilter
	seen   map[string]struct{}
}

// NewURLSet creates a URLSet sized for n expected URLs with the given
// false positive rate.
func NewURLSet(n uint, fpRate float64) *URLSet {
	return &URLSet{
		filter: bloom.NewWithEstimates(n, fpRate),
		seen:   make(map[string]struct{}),
	}
}

// Add records a URL. Returns false if the URL has already been seen.
func (s *URLSet) Add(url string) bool {
	if s.Seen(url) {
		return false
	}
	s.filter.AddString(url)
	s.seen[url] = struct{}{}
	return true
}

// Seen returns true if the URL has been recorded.
func (s *URLSet) Seen(url string) bool {
	if !s.filter.TestString(url) {
		return false
	}
	_, ok := s.seen[url]
	return ok
}

// Len returns the number of distinct URLs recorded.
func (s *URLSet) Len() int {
	return len(s.seen)
}
