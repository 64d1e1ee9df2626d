// internal/extraction/financial/patterns.go
package financial

import (
	"regexp"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/vnnum"
)

// Income amounts accept approximation prefixes and the inline per-month
// suffix ("25 triệu/tháng").
var incomeTable = []vnnum.AmountPattern{
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon+vnnum.PerMonth, vnnum.Billion),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon+vnnum.PerMonth, vnnum.Million),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitThous+vnnum.PerMonth, vnnum.Thousand),
	vnnum.Pattern(vnnum.Number+`\s*`+vnnum.UnitDong, 1),
}

var incomeSourceCatalog = classify.Catalog{
	classify.Label("Lương",
		`lương`, `đi làm`, `nhân viên`, `công nhân`, `văn phòng`, `làm công ty`, `công chức`),
	classify.Label("Kinh doanh",
		`kinh doanh`, `buôn bán`, `tự doanh`, `cửa hàng`, `bán hàng`, `chủ shop`, `doanh nghiệp riêng`),
	classify.Label("Đầu tư",
		`đầu tư`, `cổ phiếu`, `chứng khoán`, `cho thuê nhà`, `cho thuê`, `trái phiếu`),
	classify.Label("Khác",
		`trợ cấp`, `lương hưu`, `gia đình gửi`, `nguồn khác`),
}

// Label-anchored capture attempts; run on the raw message so the original
// casing survives into the title-cased result.
var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:làm\s+(?:việc\s+)?tại|công\s+tác\s+tại|làm\s+ở)\s+([^,.;\n]+)`),
	regexp.MustCompile(`(?i)công\s+ty\s*(?:tnhh|cổ\s+phần)?\s*:?\s*([^,.;\n]+)`),
	regexp.MustCompile(`(?i)(?:đơn\s+vị|nơi\s+làm\s+việc)\s*:?\s*([^,.;\n]+)`),
}

var jobTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:chức\s+vụ|vị\s+trí|nghề\s+nghiệp|công\s+việc)\s*(?:là|:)?\s*([^,.;\n]+)`),
	regexp.MustCompile(`(?i)làm\s+nghề\s+([^,.;\n]+)`),
}

// Closed fallback list of common title nouns, specific titles before the
// generic "nhân viên".
var knownJobTitles = []string{
	"giám đốc", "phó giám đốc", "trưởng phòng", "phó phòng", "quản lý",
	"nhân viên kinh doanh", "nhân viên văn phòng", "kế toán", "kỹ sư",
	"bác sĩ", "y tá", "giáo viên", "giảng viên", "công nhân", "lái xe",
	"thợ xây", "nhân viên",
}

var noExperiencePhrases = []string{
	"chưa có kinh nghiệm", "không có kinh nghiệm", "chưa đi làm",
	"mới ra trường", "mới đi làm",
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}(?:[.,]\d)?)\s*năm\s*kinh\s*nghiệm`),
	regexp.MustCompile(`kinh\s*nghiệm\s*(?:làm\s*việc\s*)?(?:là|:)?\s*(\d{1,2}(?:[.,]\d)?)\s*năm`),
	regexp.MustCompile(`làm\s*(?:việc\s*)?(?:được\s*)?(\d{1,2}(?:[.,]\d)?)\s*năm`),
}

// Secondary income is only considered when an indicator phrase is present;
// the remainder of the message is then resolved with the income table.
var otherIncomeIndicator = regexp.MustCompile(`thu\s*nhập\s*(?:khác|phụ|thêm)|làm\s*thêm|nghề\s*tay\s*trái`)

// Total assets capture number and unit word in one pattern; the unit is
// optional here, unlike the shared resolver tables.
var totalAssetsPattern = regexp.MustCompile(
	`(?:tổng\s*)?tài\s*sản\s*(?:ròng\s*)?(?:của\s*(?:tôi|em|mình)\s*)?(?:khoảng|tầm|ước\s*tính)?\s*:?\s*` +
		vnnum.Number + `\s*(tỷ|tỉ|triệu|nghìn|ngàn)?`)

var assetUnitMultipliers = map[string]float64{
	"tỷ": vnnum.Billion, "tỉ": vnnum.Billion,
	"triệu": vnnum.Million,
	"nghìn": vnnum.Thousand, "ngàn": vnnum.Thousand,
}

// Known banks are matched exactly (case folded) before any labeled capture.
// Keys are detection strings, values the canonical bank name.
var knownBanks = []struct {
	match string
	name  string
}{
	{"vietcombank", "Vietcombank"}, {"vcb", "Vietcombank"},
	{"techcombank", "Techcombank"}, {"tcb", "Techcombank"},
	{"vietinbank", "VietinBank"}, {"bidv", "BIDV"},
	{"agribank", "Agribank"}, {"mbbank", "MB Bank"}, {"mb bank", "MB Bank"},
	{"vpbank", "VPBank"}, {"acb", "ACB"}, {"sacombank", "Sacombank"},
	{"tpbank", "TPBank"}, {"hdbank", "HDBank"}, {"shb", "SHB"},
	{"vib", "VIB"}, {"msb", "MSB"}, {"ocb", "OCB"},
	{"eximbank", "Eximbank"}, {"seabank", "SeABank"},
	{"lpbank", "LPBank"}, {"lienvietpostbank", "LPBank"},
	{"pvcombank", "PVcomBank"}, {"bac a bank", "Bac A Bank"},
	{"nam a bank", "Nam A Bank"}, {"abbank", "ABBank"},
}

var bankCapturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ngân\s+hàng\s+([^,.;\n]+)`),
	regexp.MustCompile(`(?i)tài\s+khoản\s+(?:tại|ở)\s+([^,.;\n]+)`),
}
