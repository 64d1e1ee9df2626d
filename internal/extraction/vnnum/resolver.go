// internal/extraction/vnnum/resolver.go
package vnnum

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// AmountPattern pairs a detection pattern with the magnitude of the unit it
// names. The first capture group must be the numeric literal.
type AmountPattern struct {
	re         *regexp.Regexp
	multiplier float64
}

// Pattern compiles an AmountPattern. Tables are declared in order of unit
// priority (tỷ before triệu before nghìn before bare đồng); Resolve honors
// that order, so a message naming several units resolves deterministically.
func Pattern(expr string, multiplier float64) AmountPattern {
	return AmountPattern{re: regexp.MustCompile(expr), multiplier: multiplier}
}

// Resolve converts a Vietnamese currency quantity expression into an integer
// amount in đồng. Patterns are tried in declared order and the first
// structural match wins. A match whose literal cannot be parsed is treated
// as no match; absence is never an error.
func Resolve(text string, table []AmountPattern) (int64, bool) {
	for _, p := range table {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := ParseLiteral(m[1])
		if err != nil {
			return 0, false
		}
		return int64(math.Round(value * p.multiplier)), true
	}
	return 0, false
}

// ParseLiteral disambiguates decimal points from thousands grouping: a
// literal with two or more '.'/',' occurrences is thousands-grouped and all
// separators are stripped; a single comma is a decimal comma.
func ParseLiteral(literal string) (float64, error) {
	separators := strings.Count(literal, ".") + strings.Count(literal, ",")
	if separators >= 2 {
		literal = strings.NewReplacer(".", "", ",", "").Replace(literal)
	} else {
		literal = strings.ReplaceAll(literal, ",", ".")
	}
	return strconv.ParseFloat(literal, 64)
}

// Shared regex fragments for the per-domain tables. The number fragment
// captures grouped and decimal literals alike; ParseLiteral sorts them out.
const (
	Number     = `(\d+(?:[.,]\d+)*)`
	UnitBillon = `(?:tỷ|tỉ)`
	UnitMillon = `(?:triệu|trieu|tr\b)`
	UnitThous  = `(?:nghìn|ngàn|k\b)`
	UnitDong   = `(?:đồng|dong|vnđ|vnd|đ\b)`
	Approx     = `(?:khoảng|tầm|ước tính|gần|hơn)?\s*`
	PerMonth   = `(?:\s*/\s*tháng|\s*(?:mỗi|một|hàng|1)\s*tháng)?`
)

const (
	Billion  = 1_000_000_000
	Million  = 1_000_000
	Thousand = 1_000
)
