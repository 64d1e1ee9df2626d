// internal/extraction/debt/patterns.go
package debt

import (
	"regexp"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/vnnum"
)

// No-debt patterns are checked before has-debt patterns: "không có nợ"
// contains "có nợ" and must not flip the flag. Do not reorder.
var hasDebtCatalog = classify.Catalog{
	classify.Label("false",
		`không có nợ`, `không nợ`, `chưa có nợ`, `chưa có khoản vay`,
		`không có khoản vay`, `chưa vay`, `không vay`, `hết nợ`, `trả hết nợ`),
	classify.Label("true",
		`có nợ`, `đang nợ`, `còn nợ`, `đang vay`, `có khoản vay`, `dư nợ`, `nợ ngân hàng`),
}

// Total outstanding debt, anchored on debt vocabulary so the monthly
// payment figure in the same message cannot win.
var totalDebtTable = []vnnum.AmountPattern{
	vnnum.Pattern(`(?:nợ|dư nợ|khoản vay)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon, vnnum.Billion),
	vnnum.Pattern(`(?:nợ|dư nợ|khoản vay)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon, vnnum.Million),
	vnnum.Pattern(`(?:nợ|dư nợ|khoản vay)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitThous, vnnum.Thousand),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon, vnnum.Billion),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon, vnnum.Million),
}

// Monthly installment, anchored on payment vocabulary with the inline
// per-month suffix.
var monthlyPaymentTable = []vnnum.AmountPattern{
	vnnum.Pattern(`(?:trả|trả góp|thanh toán|đóng)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon+vnnum.PerMonth, vnnum.Billion),
	vnnum.Pattern(`(?:trả|trả góp|thanh toán|đóng)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon+vnnum.PerMonth, vnnum.Million),
	vnnum.Pattern(`(?:trả|trả góp|thanh toán|đóng)\s*`+vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitThous+vnnum.PerMonth, vnnum.Thousand),
	vnnum.Pattern(vnnum.Number+`\s*`+vnnum.UnitMillon+`\s*(?:/\s*tháng|mỗi tháng|hàng tháng|một tháng)`, vnnum.Million),
}

// CIC groups, ordinal 1 (best) to 5 (worst): explicit group number or the
// bureau's descriptor phrase.
var cicGroupCatalog = classify.Catalog{
	classify.Label("Nhóm 1", `nhóm\s*1`, `nợ đủ tiêu chuẩn`, `đủ tiêu chuẩn`),
	classify.Label("Nhóm 2", `nhóm\s*2`, `nợ cần chú ý`, `cần chú ý`),
	classify.Label("Nhóm 3", `nhóm\s*3`, `nợ dưới tiêu chuẩn`, `dưới tiêu chuẩn`),
	classify.Label("Nhóm 4", `nhóm\s*4`, `nợ nghi ngờ`, `nghi ngờ`),
	classify.Label("Nhóm 5", `nhóm\s*5`, `nợ có khả năng mất vốn`, `mất vốn`),
}

var creditHistoryCapture = regexp.MustCompile(`lịch sử tín dụng\s*(?:là|:)?\s*([^,.;\n]+)`)

var goodCreditPhrases = []string{
	"trả đúng hạn", "chưa bao giờ trễ hạn", "không trễ hạn",
	"tín dụng tốt", "không nợ xấu", "chưa từng nợ xấu",
}

var badCreditPhrases = []string{
	"nợ xấu", "trễ hạn", "quá hạn", "chậm trả", "từng bị nhắc nợ",
}

const (
	creditGood = "Tín dụng tốt"
	creditBad  = "Có vấn đề tín dụng"
)

var existingLoansCapture = regexp.MustCompile(`(?:các khoản vay|những khoản vay|khoản vay hiện tại)\s*(?:là|gồm|:)\s*([^.;\n]+)`)

// Fixed loan-type phrases scanned in order; matched labels are joined with
// a comma. This is the engine's only multi-value field.
var loanTypePhrases = []struct {
	phrase string
	label  string
}{
	{"thế chấp", "Vay thế chấp"},
	{"tín chấp", "Vay tín chấp"},
	{"vay mua xe", "Vay mua xe"},
	{"vay ô tô", "Vay mua xe"},
	{"thẻ tín dụng", "Thẻ tín dụng"},
}
