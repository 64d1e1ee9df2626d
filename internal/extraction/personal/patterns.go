// internal/extraction/personal/patterns.go
package personal

import (
	"regexp"

	"loan-intake-workers/internal/extraction/classify"
)

// Name-shaped patterns run on the raw message to see the original casing.
// Explicit introductions first, labeled forms second, a bare capitalized
// word sequence at the start of the message strictly last. The bare form
// deliberately anchors to the message start only; capitalized words on
// later lines are too noisy to treat as names.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)tên(?:\s+(?:của\s+)?(?:tôi|em|mình|anh|chị))?\s+là\s+([^,.;\n]+)`),
	regexp.MustCompile(`(?i)họ\s*(?:và\s*)?tên\s*:?\s*([^,.;\n]+)`),
	regexp.MustCompile(`^(\p{Lu}\p{Ll}+(?:\s+\p{Lu}\p{Ll}+){1,5})`),
}

// Candidate digit runs may be grouped with spaces, dots, or dashes.
var (
	phoneCandidate = regexp.MustCompile(`\+?\d[\d .\-]{7,13}\d`)
	nonPhoneChars  = regexp.MustCompile(`[^\d+]`)
)

// Vietnamese mobile shapes after stripping everything but digits and '+'.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\+?84(\d{9})$`),
	regexp.MustCompile(`^(0\d{9})$`),
	regexp.MustCompile(`^(\d{9})$`),
}

var (
	birthYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	agePattern       = regexp.MustCompile(`(\d{1,2})\s*tuổi`)
)

// The negative/female-coded label is checked before the male-coded one.
// The order is load-bearing for ambiguous short replies; do not swap.
var genderCatalog = classify.Catalog{
	classify.Label("Nữ", `nữ`, `phụ nữ`, `con gái`, `chị ấy`, `cô ấy`, `female`),
	classify.Label("Nam", `nam`, `con trai`, `đàn ông`, `male`),
}

// Single first, married second, for the same reason: "chưa kết hôn"
// contains "kết hôn".
var maritalCatalog = classify.Catalog{
	classify.Label("Độc thân",
		`độc thân`, `chưa kết hôn`, `chưa lập gia đình`, `chưa có gia đình`, `single`),
	classify.Label("Đã kết hôn",
		`đã kết hôn`, `kết hôn`, `đã cưới`, `có gia đình`, `lập gia đình`, `có vợ`, `có chồng`),
	classify.Label("Ly hôn", `ly hôn`, `ly dị`, `đã ly thân`),
}

// An explicit no-dependents phrase short-circuits to zero.
var noDependentsPhrases = []string{
	"không có con", "chưa có con", "không con",
	"không có người phụ thuộc", "chưa có người phụ thuộc", "không người phụ thuộc",
	"không nuôi ai",
}

// The spouse-and-children shapes must capture only the child count, not the
// family size, so they come before the generic count patterns.
var dependentsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`có\s+vợ\s+và\s+(\d{1,2})\s+con`),
	regexp.MustCompile(`có\s+chồng\s+và\s+(\d{1,2})\s+con`),
	regexp.MustCompile(`(\d{1,2})\s*người\s*phụ\s*thuộc`),
	regexp.MustCompile(`nuôi\s+(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})\s+con\b`),
	regexp.MustCompile(`(\d{1,2})\s+cháu\b`),
}

var emailPattern = regexp.MustCompile(`([a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,})`)
