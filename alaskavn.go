// Package alaskavn provides a heuristic scraper for the Alaska.vn product
// catalog and site navigation. It crawls listing pages to discover products,
// extracts structured data (names, regional prices, specifications, features,
// images, contact details) from individual pages using ordered chains of CSS
// selector and regex strategies, and serializes the results to JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package alaskavn

import "time"

// Base URLs for the target site. Relative URLs discovered during extraction
// are always resolved against BaseURL before they are stored.
const (
	BaseURL     = "https://alaska.vn"
	HomeURL     = "https://alaska.vn/"
	ProductsURL = "https://alaska.vn/product/"
)

// TimeFormat is the timestamp layout used in all output records.
const TimeFormat = "2006-01-02 15:04:05"

// Timestamp formats t in the layout used by output records.
func Timestamp(t time.Time) string {
	return t.Format(TimeFormat)
}
