// internal/extraction/loaninfo/patterns.go
package loaninfo

import (
	"regexp"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/vnnum"
)

// Loan amounts accept the shared unit ladder plus bare 8+ digit runs and
// thousands-grouped literals, which customers paste from bank statements.
var amountTable = []vnnum.AmountPattern{
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon, vnnum.Billion),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon, vnnum.Million),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitThous, vnnum.Thousand),
	vnnum.Pattern(vnnum.Number+`\s*`+vnnum.UnitDong, 1),
	vnnum.Pattern(`(\d{1,3}(?:[.,]\d{3}){2,})`, 1),
	vnnum.Pattern(`(\d{8,})`, 1),
}

// termAliases is checked first, in order, by substring containment on the
// normalized message. Month counts map to their canonical year label.
var termAliases = []struct {
	alias string
	label string
}{
	{"12 tháng", "1 năm"},
	{"24 tháng", "2 năm"},
	{"36 tháng", "3 năm"},
	{"48 tháng", "4 năm"},
	{"60 tháng", "5 năm"},
	{"120 tháng", "10 năm"},
	{"180 tháng", "15 năm"},
	{"240 tháng", "20 năm"},
	{"300 tháng", "25 năm"},
	{"một năm", "1 năm"},
	{"hai năm", "2 năm"},
	{"ba năm", "3 năm"},
	{"năm năm", "5 năm"},
	{"mười năm", "10 năm"},
}

// Numeric fallback: an integer year or month count is looked up in a fixed
// table. Unmapped integers ("7 năm") are left unextracted on purpose instead
// of inventing a label outside the product's term sheet.
var (
	termYearPattern  = regexp.MustCompile(`(\d{1,2})\s*năm`)
	termMonthPattern = regexp.MustCompile(`(\d{1,3})\s*tháng`)
)

var termYearLabels = map[int]string{
	1: "1 năm", 2: "2 năm", 3: "3 năm", 4: "4 năm", 5: "5 năm",
	10: "10 năm", 15: "15 năm", 20: "20 năm", 25: "25 năm",
}

var termMonthLabels = map[int]string{
	12: "1 năm", 24: "2 năm", 36: "3 năm", 48: "4 năm", 60: "5 năm",
	120: "10 năm", 180: "15 năm", 240: "20 năm", 300: "25 năm",
}

var purposeCatalog = classify.Catalog{
	classify.Label("Vay mua bất động sản",
		`mua nhà`, `mua đất`, `mua căn hộ`, `mua chung cư`, `bất động sản`, `xây nhà`, `sửa nhà`),
	classify.Label("Vay mua xe",
		`mua xe`, `mua ô tô`, `mua oto`, `mua xe máy`, `đổi xe`),
	classify.Label("Vay kinh doanh",
		`kinh doanh`, `mở cửa hàng`, `mở quán`, `buôn bán`, `vốn lưu động`, `mở rộng sản xuất`),
	classify.Label("Vay tiêu dùng",
		`tiêu dùng`, `mua sắm`, `sinh hoạt`, `chi tiêu`, `đám cưới`, `du lịch`),
	classify.Label("Vay học tập",
		`học phí`, `du học`, `học tập`, `tiền học`),
}

var typeCatalog = classify.Catalog{
	classify.Label("Vay thế chấp",
		`vay thế chấp`, `thế chấp bằng`, `có thế chấp`, `có tài sản đảm bảo`, `tài sản thế chấp`),
	classify.Label("Vay tín chấp",
		`tín chấp`, `không (?:cần |có )?thế chấp`, `không (?:cần |có )?tài sản`, `vay theo lương`),
}

// Agent codes: explicit prefixes first, the generic letters+digits shape
// last. Capture is case sensitive; the result is upper-cased.
var agentCodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:mã|ma)\s*(?:nhân viên|nv|tư vấn|giới thiệu)\s*[:\-]?\s*([A-Za-z]{1,4}\d{3,6})`),
	regexp.MustCompile(`\b(NV\d{3,6})\b`),
	regexp.MustCompile(`\b([A-Za-z]{2,4}\d{3,6})\b`),
}
