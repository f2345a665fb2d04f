package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// maxSpecValueLen caps accepted specification values, in runes.
const maxSpecValueLen = 100

// ExtractSpecifications builds the specification mapping from three pattern
// families applied in order: labeled regex patterns, shape-sniffing
// patterns, and table row scans. All families run; duplicate keys resolve
// last-write-wins, so table rows override regex matches.
func ExtractSpecifications(doc *Document) map[string]string {
	strategies := []Strategy{labeledSpecs, shapeSpecs, tableSpecs}
	return mergeAll(doc, strategies, acceptSpec)
}

// acceptSpec rejects values that leak price data into the spec table and
// anything outside the length bound.
func acceptSpec(key, value string) bool {
	if utf8.RuneCountInString(value) >= maxSpecValueLen {
		return false
	}
	upperKey := strings.ToUpper(key)
	upperVal := strings.ToUpper(value)
	if strings.Contains(upperVal, CurrencySuffix) || strings.Contains(upperVal, regionMarker) {
		return false
	}
	return !strings.Contains(upperKey, regionMarker)
}

// labeledSpecs applies the explicit "Label: value" patterns.
func labeledSpecs(doc *Document) []Match {
	var matches []Match
	text := doc.Text()
	for _, p := range labeledSpecPatterns {
		for _, m := range p.Re.FindAllStringSubmatch(text, -1) {
			value := strings.TrimSpace(m[1])
			if value == "" {
				continue
			}
			matches = append(matches, Match{Key: p.Key, Value: value})
		}
	}
	return matches
}

// shapeSpecs applies the unlabeled patterns and infers each key from the
// matched value's shape.
func shapeSpecs(doc *Document) []Match {
	var matches []Match
	text := doc.Text()
	for _, re := range shapeSpecPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value := strings.TrimSpace(m[1])
			key := inferSpecKey(value)
			if key == "" {
				continue
			}
			matches = append(matches, Match{Key: key, Value: value})
		}
	}
	return matches
}

// inferSpecKey classifies an unlabeled value by its unit suffix or symbol
// set. Returns "" for values with no recognizable shape.
func inferSpecKey(value string) string {
	switch {
	case strings.Contains(value, "x") && strings.Contains(value, "mm"):
		return "Dimensions"
	case strings.Contains(value, "kg"):
		return "Weight"
	case strings.Contains(value, "L"):
		return "Capacity"
	case strings.HasPrefix(value, "R") && containsDigit(value):
		return "Refrigerant"
	case strings.Contains(value, "~") && strings.Contains(value, "ºC"):
		return "Temperature"
	case strings.HasSuffix(value, "W") && isAllDigits(strings.TrimSuffix(value, "W")):
		return "Power"
	case strings.Contains(value, "V") || strings.Contains(value, "Hz"):
		return "Voltage"
	}
	return ""
}

// tableSpecs scans every table for two-cell rows and treats them as
// key/value pairs.
func tableSpecs(doc *Document) []Match {
	var matches []Match
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if key == "" || value == "" {
			return
		}
		matches = append(matches, Match{Key: key, Value: value})
	})
	return matches
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
