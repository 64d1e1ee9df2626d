// internal/extraction/vnnum/resolver_test.go
package vnnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A minimal loan-style table: unit priority tỷ > triệu > nghìn > đồng,
// then formatted and bare digit runs.
func testTable() []AmountPattern {
	return []AmountPattern{
		Pattern(Number+`\s*`+UnitBillon, Billion),
		Pattern(Number+`\s*`+UnitMillon, Million),
		Pattern(Number+`\s*`+UnitThous, Thousand),
		Pattern(Number+`\s*`+UnitDong, 1),
		Pattern(`(\d{1,3}(?:[.,]\d{3}){2,})`, 1),
		Pattern(`(\d{8,})`, 1),
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int64
	}{
		{"billion unit", "tôi muốn vay 2 tỷ", 2_000_000_000},
		{"decimal billion", "vay 1,5 tỷ", 1_500_000_000},
		{"decimal point billion", "vay 1.5 tỷ", 1_500_000_000},
		{"million unit", "cần 500 triệu", 500_000_000},
		{"million shorthand", "cần 500 tr nữa", 500_000_000},
		{"thousand unit", "500 nghìn", 500_000},
		{"k shorthand", "tầm 500 k", 500_000},
		{"bare dong", "500 đồng", 500},
		{"grouped literal", "vay 2.000.000.000 đồng", 2_000_000_000},
		{"grouped without unit", "số tiền 1.500.000.000", 1_500_000_000},
		{"bare digit run", "vay 200000000", 200_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.text, testTable())
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	for _, text := range []string{"", "tôi muốn vay mua nhà", "nhiều tiền lắm"} {
		_, ok := Resolve(text, testTable())
		assert.False(t, ok, "text %q should not resolve", text)
	}
}

// Unit priority is a behavioral contract: the table order decides which unit
// wins when several appear in one message.
func TestResolve_UnitPriority(t *testing.T) {
	table := testTable()

	five, _ := Resolve("5 tỷ", table)
	fiveHundredM, _ := Resolve("500 triệu", table)
	fiveHundredK, _ := Resolve("500 nghìn", table)
	fiveHundred, _ := Resolve("500 đồng", table)

	assert.Greater(t, five, fiveHundredM)
	assert.Greater(t, fiveHundredM, fiveHundredK)
	assert.Greater(t, fiveHundredK, fiveHundred)
}

func TestResolve_OrderTieBreak(t *testing.T) {
	// Both units present: the tỷ pattern is declared first and wins.
	got, ok := Resolve("vay 2 tỷ hoặc 500 triệu cũng được", testTable())
	require.True(t, ok)
	assert.Equal(t, int64(2_000_000_000), got)
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		literal  string
		expected float64
	}{
		{"2", 2},
		{"1,5", 1.5},
		{"1.5", 1.5},
		{"2.000.000", 2_000_000},
		{"1,500,000", 1_500_000},
		{"1.500,000", 1_500_000},
	}
	for _, tt := range tests {
		got, err := ParseLiteral(tt.literal)
		require.NoError(t, err, tt.literal)
		assert.Equal(t, tt.expected, got, tt.literal)
	}
}
