// internal/extraction/collateral/patterns.go
package collateral

import (
	"regexp"

	"loan-intake-workers/internal/extraction/classify"
	"loan-intake-workers/internal/extraction/vnnum"
)

var typeCatalog = classify.Catalog{
	classify.Label("Bất động sản",
		`nhà`, `đất`, `căn hộ`, `chung cư`, `biệt thự`, `bất động sản`, `sổ đỏ`, `sổ hồng`),
	classify.Label("Ô tô",
		`ô tô`, `oto`, `xe hơi`, `xe ô tô`),
	classify.Label("Xe máy",
		`xe máy`, `xe mô tô`, `xe tay ga`),
	classify.Label("Vàng",
		`vàng`, `sjc`, `vàng miếng`),
	classify.Label("Chứng khoán",
		`chứng khoán`, `cổ phiếu`, `trái phiếu`, `sổ tiết kiệm`),
	classify.Label("Khác",
		`tài sản khác`, `máy móc`, `thiết bị`),
}

var valueTable = []vnnum.AmountPattern{
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitBillon, vnnum.Billion),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitMillon, vnnum.Million),
	vnnum.Pattern(vnnum.Approx+vnnum.Number+`\s*`+vnnum.UnitThous, vnnum.Thousand),
	vnnum.Pattern(`(\d{1,3}(?:[.,]\d{3}){2,})`, 1),
}

// Generic labeled descriptions come first; the type-specific clauses only
// run when a collateral type was recognized in the same message.
var infoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`tài sản(?:\s*(?:đảm bảo|thế chấp))?\s*(?:là|:|gồm)\s*([^.;\n]+)`),
	regexp.MustCompile(`thế chấp\s*(?:bằng|:)\s*([^.;\n]+)`),
	regexp.MustCompile(`(?:mô tả|thông tin)\s*tài sản\s*:?\s*([^.;\n]+)`),
	regexp.MustCompile(`dùng\s+([^.;\n]+?)\s+(?:để|làm)\s+(?:thế chấp|đảm bảo)`),
}

var typeInfoPatterns = map[string][]*regexp.Regexp{
	"Bất động sản": {
		regexp.MustCompile(`((?:nhà|căn nhà|căn hộ|chung cư|biệt thự)[^.;\n]*)`),
		regexp.MustCompile(`((?:đất|lô đất|mảnh đất)[^.;\n]*)`),
	},
	"Ô tô": {
		regexp.MustCompile(`((?:xe|ô tô|oto)[^.;\n]*)`),
	},
	"Xe máy": {
		regexp.MustCompile(`(xe máy[^.;\n]*)`),
		regexp.MustCompile(`(xe[^.;\n]*)`),
	},
	"Vàng": {
		regexp.MustCompile(`(vàng[^.;\n]*)`),
	},
	"Chứng khoán": {
		regexp.MustCompile(`((?:cổ phiếu|trái phiếu|chứng khoán|sổ tiết kiệm)[^.;\n]*)`),
	},
}

// The raw-message fallback only fires between these bounds, so the engine
// never echoes an unrelated long message or a bare "ok" back as a
// description.
const (
	infoFallbackMinLen = 10
	infoFallbackMaxLen = 200
)

// collateralImage is a human-readable phrase for the confirmation reply,
// not a boolean. Absence phrases first.
var imageCatalog = classify.Catalog{
	classify.Label("Chưa có hình ảnh",
		`chưa có (?:hình|ảnh)`, `không có (?:hình|ảnh)`, `chưa chụp`, `chưa gửi (?:hình|ảnh)`),
	classify.Label("Đã cung cấp hình ảnh",
		`đã gửi (?:hình|ảnh)`, `có (?:hình|ảnh)`, `đính kèm`, `gửi (?:hình|ảnh) rồi`, `vừa gửi`),
}
