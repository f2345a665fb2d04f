package goquery

import "strings"

// ExtractContactInfo applies the phone, email, and address pattern families
// to the flattened page text. For each field the first accepted match wins
// and remaining patterns for that field are skipped. Fields with no
// accepted match are absent from the result.
func ExtractContactInfo(doc *Document) map[string]string {
	contact := map[string]string{}
	text := doc.Text()

	for _, re := range phonePatterns {
		if _, ok := contact["phone"]; ok {
			break
		}
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if phoneDigitCount(m[1]) >= minPhoneDigits {
				contact["phone"] = strings.TrimSpace(m[1])
				break
			}
		}
	}

	if m := emailPattern.FindStringSubmatch(text); m != nil {
		contact["email"] = m[1]
	}

	for _, re := range addressPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			contact["address"] = strings.TrimSpace(m[1])
			break
		}
	}

	return contact
}

// phoneDigitCount counts the digits (and leading +) left after discarding
// formatting characters.
func phoneDigitCount(s string) int {
	n := 0
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			n++
		}
	}
	return n
}
