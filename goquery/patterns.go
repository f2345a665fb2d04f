package goquery

import "regexp"

// This file is the pattern library: the ordered catalog of regex and
// selector strategies per field. Order encodes priority. Scalar fields stop
// at the first accepted value; mapping fields apply every pattern and merge
// last-write-wins (see strategy.go).

// pricePatterns capture a regional price as (region, amount). The site
// renders the same table in several casings and with or without a colon, so
// the variants are kept explicit rather than collapsed.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(MIỀN\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*VNĐ`),
	regexp.MustCompile(`(?i)(Miền\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*VNĐ`),
	regexp.MustCompile(`(?i)(MIỀN\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*vnđ`),
	regexp.MustCompile(`(?i)(Miền\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*vnđ`),
	regexp.MustCompile(`(?i)(MIỀN\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*đ`),
	regexp.MustCompile(`(?i)(Miền\s+\p{L}+)\s*[:\-]\s*([\d,.\s]+)\s*đ`),
	regexp.MustCompile(`(?i)(Miền\s+\p{L}+)\s+([\d,.\s]+)\s*VNĐ`),
	regexp.MustCompile(`(?i)(MIỀN\s+\p{L}+)\s+([\d,.\s]+)\s*VNĐ`),
	regexp.MustCompile(`(?i)(Miền\s+\p{L}+).*?([\d,]+,\d+)\s*VNĐ`),
	regexp.MustCompile(`(?i)(MIỀN\s+\p{L}+).*?([\d,]+,\d+)\s*VNĐ`),
}

// CurrencySuffix is appended to every accepted price value.
const CurrencySuffix = "VNĐ"

// regionMarker is the regional-price label token. Specification values
// containing it (or the currency token) are rejected to keep price data out
// of the specifications map.
const regionMarker = "MIỀN"

// labeledSpecPattern is an explicit "Label: value" specification rule.
type labeledSpecPattern struct {
	Key string
	Re  *regexp.Regexp
}

// labeledSpecPatterns cover the labels the site uses, Vietnamese first.
var labeledSpecPatterns = []labeledSpecPattern{
	{"Kích thước", regexp.MustCompile(`(?i)Kích thước\s*[:\-]?\s*([^\n]+)`)},
	{"Trọng lượng", regexp.MustCompile(`(?i)Trọng lượng\s*[:\-]?\s*([^\n]+)`)},
	{"Dung tích", regexp.MustCompile(`(?i)Dung tích\s*[:\-]?\s*([^\n]+)`)},
	{"Nhiệt độ", regexp.MustCompile(`(?i)Nhiệt độ\s*[:\-]?\s*([^\n]+)`)},
	{"Công suất", regexp.MustCompile(`(?i)Công suất\s*[:\-]?\s*([^\n]+)`)},
	{"Điện áp", regexp.MustCompile(`(?i)Điện áp\s*[:\-]?\s*([^\n]+)`)},
	{"Gas", regexp.MustCompile(`(?i)Gas\s*[:\-]?\s*([^\n]+)`)},
	{"Môi chất", regexp.MustCompile(`(?i)Môi chất\s*[:\-]?\s*([^\n]+)`)},
	{"Tần số", regexp.MustCompile(`(?i)Tần số\s*[:\-]?\s*([^\n]+)`)},
	{"Chất làm lạnh", regexp.MustCompile(`(?i)Chất làm lạnh\s*[:\-]?\s*([^\n]+)`)},
	{"Xuất xứ", regexp.MustCompile(`(?i)Xuất xứ\s*[:\-]?\s*([^\n]+)`)},
	{"Bảo hành", regexp.MustCompile(`(?i)Bảo hành\s*[:\-]?\s*([^\n]+)`)},
	{"Dimensions", regexp.MustCompile(`(?i)Dimensions?\s*[:\-]?\s*([^\n]+)`)},
	{"Weight", regexp.MustCompile(`(?i)Weight\s*[:\-]?\s*([^\n]+)`)},
	{"Capacity", regexp.MustCompile(`(?i)Capacity\s*[:\-]?\s*([^\n]+)`)},
	{"Temperature", regexp.MustCompile(`(?i)Temperature\s*[:\-]?\s*([^\n]+)`)},
	{"Power", regexp.MustCompile(`(?i)Power\s*[:\-]?\s*([^\n]+)`)},
	{"Voltage", regexp.MustCompile(`(?i)Voltage\s*[:\-]?\s*([^\n]+)`)},
	{"Refrigerant", regexp.MustCompile(`(?i)Refrigerant\s*[:\-]?\s*([^\n]+)`)},
}

// shapeSpecPatterns match unlabeled values whose key is inferred from the
// value's shape (unit suffix, symbol set). The capture includes the unit so
// inferSpecKey can classify it.
var shapeSpecPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+x\d+x\d+\s*mm)`),
	regexp.MustCompile(`(\d+\s*kg)`),
	regexp.MustCompile(`(\d+L)`),
	regexp.MustCompile(`(R\d+[A-Z]?)`),
	regexp.MustCompile(`(\d+~\d+ºC)`),
	regexp.MustCompile(`(\d+W)`),
	regexp.MustCompile(`(\d+~?\d*V/?\d*Hz)`),
}

// featureClassRE matches class names of containers that hold feature lists.
var featureClassRE = regexp.MustCompile(`(?i)feature|tính-năng|đặc-điểm`)

// featureBulletPatterns find bullet-marked lines in flattened page text.
var featureBulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[•▪▫▶→✓]\s*([^\n]+)`),
	regexp.MustCompile(`[-–—]\s*([^\n]+)`),
}

// Feature entries outside this rune-count window are rejected.
const (
	minFeatureLen = 10
	maxFeatureLen = 200
)

// Image filename filtering.
var (
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	imageDenyWords  = []string{"logo", "icon", "banner", "header", "footer"}
)

// Contact patterns. Phone matches are accepted only when the digit residue
// is at least minPhoneDigits long; the first accepted match per field wins.
var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Tel|Phone|Điện thoại|SĐT)[:\s]*([+\d\s\-()]{10,})`),
		regexp.MustCompile(`(\+84\S{9,})`),
		regexp.MustCompile(`(0[1-9]\d{8,9})`),
	}
	emailPattern    = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Địa chỉ|Address)[:\s]*([^\n]{20,100})`),
		regexp.MustCompile(`([^\n]*(?:Quận|District|Phường|Ward)[^\n]{10,})`),
	}
)

const minPhoneDigits = 10

// Navigation allow-lists. navTargets is the canonical label order; output
// always follows it regardless of where the labels appear in the document.
var navTargets = []string{
	"Giới thiệu",
	"Hỗ trợ khách hàng",
	"Dự án",
	"Tin tức",
	"Liên hệ",
}

// navURLFallbacks maps each target label to known URL-path fragments, used
// when no link text matches the label.
var navURLFallbacks = map[string][]string{
	"Giới thiệu":        {"/ve-chung-toi/", "/gioi-thieu/"},
	"Hỗ trợ khách hàng": {"#", "/ho-tro/"},
	"Dự án":             {"/project/", "/du-an/"},
	"Tin tức":           {"/tin-tuc/", "/news/"},
	"Liên hệ":           {"/lien-he-alaska/", "/lien-he/", "/contact/"},
}

// navExpectedSubItems lists the known dropdown entries per parent label.
// Parents absent from this map have no sub-menu worth extracting.
var navExpectedSubItems = map[string][]string{
	"Giới thiệu":        {"Video clip", "Tuyển dụng", "Thông cáo báo chí"},
	"Hỗ trợ khách hàng": {"Catalogue", "Trung tâm bảo hành", "Hỏi đáp"},
}

// navSubMenuSelectors is the priority order for locating a dropdown
// container next to a matched navigation link.
var navSubMenuSelectors = []string{".sub-menu", ".dropdown-menu", "ul", ".submenu"}

// Product identity selector chains, tried in order.
var (
	nameSelectors        = []string{"h1", ".product-title", ".entry-title"}
	breadcrumbSelectors  = []string{".breadcrumb", ".breadcrumbs", ".woocommerce-breadcrumb", `nav[aria-label="breadcrumb"]`}
	descriptionSelectors = []string{".product-description", ".entry-content", ".description", ".summary"}
)

// MSP extraction: explicit label first, model-code URL slug as fallback.
var (
	mspPattern      = regexp.MustCompile(`(?i)MSP[:\s]*([A-Z0-9-]+)`)
	urlSlugPattern  = regexp.MustCompile(`/([a-zA-Z0-9-]+)/$`)
	slugModelCodeRE = regexp.MustCompile(`(?i)([a-z]{2}-\d+[a-z]?)$`)
)
