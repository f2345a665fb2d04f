package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/alaskavn"
)

var logoSelectors = []string{".logo img", ".site-logo img", `a[href="/"] img`, "header img"}

var socialSelectors = []string{
	`a[href*="facebook"]`,
	`a[href*="twitter"]`,
	`a[href*="instagram"]`,
	`a[href*="youtube"]`,
	`a[href*="linkedin"]`,
	".social-links a",
	".social-media a",
}

var languageSelectors = []string{
	".language-switcher a",
	".lang-switcher a",
	"a[hreflang]",
	`a[href*="/en"]`,
	`a[href*="/vn"]`,
}

// ExtractHeaderElements collects the non-menu header content: the site
// logo (and the link wrapping it), social media links, and language
// switcher options.
func ExtractHeaderElements(doc *Document) alaskavn.HeaderElements {
	header := alaskavn.HeaderElements{
		SocialLinks:     []alaskavn.SocialLink{},
		LanguageOptions: []string{},
		ContactInfo:     map[string]string{},
	}

	if logo := findLogo(doc); logo != nil {
		src, _ := logo.Attr("src")
		if src != "" {
			header.LogoURL = doc.ResolveURL(src)
			if anchor := logo.Closest("a"); anchor.Length() > 0 {
				if href, ok := anchor.Attr("href"); ok && href != "" {
					header.LogoLink = doc.ResolveURL(href)
				}
			}
		}
	}

	for _, selector := range socialSelectors {
		doc.Find(selector).Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			if href == "" {
				return
			}
			header.SocialLinks = append(header.SocialLinks, alaskavn.SocialLink{
				Platform: socialPlatform(href),
				URL:      href,
				Text:     strings.TrimSpace(link.Text()),
			})
		})
	}

	languages := map[string]bool{}
	for _, selector := range languageSelectors {
		doc.Find(selector).Each(func(_ int, link *goquery.Selection) {
			if hreflang, ok := link.Attr("hreflang"); ok && hreflang != "" {
				languages[strings.ToUpper(hreflang)] = true
				return
			}
			text := strings.TrimSpace(link.Text())
			switch text {
			case "VN", "EN", "Tiếng Việt", "English":
				languages[strings.ToUpper(text)] = true
			}
		})
	}
	for lang := range languages {
		header.LanguageOptions = append(header.LanguageOptions, lang)
	}
	sort.Strings(header.LanguageOptions)

	return header
}

// findLogo probes for the site logo: first any image whose alt text
// mentions "logo", then the class and position based selectors.
func findLogo(doc *Document) *goquery.Selection {
	var logo *goquery.Selection
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, _ := img.Attr("alt")
		if strings.Contains(strings.ToLower(alt), "logo") {
			logo = img
			return false
		}
		return true
	})
	if logo != nil {
		return logo
	}

	for _, selector := range logoSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

func socialPlatform(href string) string {
	lower := strings.ToLower(href)
	switch {
	case strings.Contains(lower, "facebook"):
		return "Facebook"
	case strings.Contains(lower, "twitter"):
		return "Twitter"
	case strings.Contains(lower, "instagram"):
		return "Instagram"
	case strings.Contains(lower, "youtube"):
		return "YouTube"
	case strings.Contains(lower, "linkedin"):
		return "LinkedIn"
	}
	return "unknown"
}
