package goquery

import "strings"

// ExtractPrices scans the flattened page text for regional price lines and
// returns a region → formatted price mapping. Matched amounts are stripped
// of separators, validated as all-digit, and reformatted with thousands
// separators and the fixed currency suffix. Non-numeric remainders are
// dropped silently.
func ExtractPrices(doc *Document) map[string]string {
	strategies := make([]Strategy, 0, len(pricePatterns))
	for _, re := range pricePatterns {
		re := re
		strategies = append(strategies, func(doc *Document) []Match {
			var matches []Match
			for _, m := range re.FindAllStringSubmatch(doc.Text(), -1) {
				region := strings.TrimSpace(m[1])
				price, ok := formatPrice(m[2])
				if !ok {
					continue
				}
				matches = append(matches, Match{Key: region, Value: price})
			}
			return matches
		})
	}
	return mergeAll(doc, strategies, nil)
}

// formatPrice normalizes a raw amount to "#,### VNĐ" form. Returns false
// when the separator-stripped remainder is not all digits.
func formatPrice(raw string) (string, bool) {
	digits := stripPriceSeparators(raw)
	if digits == "" || !isAllDigits(digits) {
		return "", false
	}
	return groupThousands(digits) + " " + CurrencySuffix, true
}

func stripPriceSeparators(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ',', '.', ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// groupThousands inserts comma separators into an all-digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
