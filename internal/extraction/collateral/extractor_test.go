// internal/extraction/collateral/extractor_test.go
package collateral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FullCollateralDescription(t *testing.T) {
	e := New()

	fields := e.Extract("Tài sản là nhà 2 tầng ở quận 9, ước tính 3 tỷ")

	assert.Equal(t, "Bất động sản", fields[FieldCollateralType])
	assert.Equal(t, int64(3_000_000_000), fields[FieldCollateralValue])
	require.Contains(t, fields, FieldCollateralInfo)
	assert.Equal(t, "nhà 2 tầng ở quận 9, ước tính 3 tỷ", fields[FieldCollateralInfo])
	assert.NotContains(t, fields, FieldCollateralImage)
}

func TestExtract_CollateralType(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"house", "em có căn nhà ở thủ đức", "Bất động sản"},
		{"land title", "thế chấp sổ đỏ được không", "Bất động sản"},
		{"car", "em muốn thế chấp xe ô tô", "Ô tô"},
		{"motorbike", "chỉ có xe máy thôi", "Xe máy"},
		{"gold", "em có 5 cây vàng SJC", "Vàng"},
		{"securities", "em đang giữ cổ phiếu", "Chứng khoán"},
		{"savings book", "có sổ tiết kiệm 200 triệu", "Chứng khoán"},
		{"other", "bên em có máy móc thiết bị", "Khác"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := e.Extract(tc.message)
			assert.Equal(t, tc.expected, fields[FieldCollateralType])
		})
	}
}

func TestExtract_CollateralValue(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		message  string
		expected int64
	}{
		{"billion with approx", "căn hộ trị giá khoảng 2,5 tỷ", 2_500_000_000},
		{"million", "xe máy tầm 45 triệu", 45_000_000},
		{"grouped literal", "nhà định giá 1.800.000.000", 1_800_000_000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := e.Extract(tc.message)
			assert.Equal(t, tc.expected, fields[FieldCollateralValue])
		})
	}
}

func TestExtract_InfoTypeSpecificClause(t *testing.T) {
	e := New()

	fields := e.Extract("em đang ở căn hộ 70m2 tại bình thạnh")

	assert.Equal(t, "Bất động sản", fields[FieldCollateralType])
	assert.Equal(t, "căn hộ 70m2 tại bình thạnh", fields[FieldCollateralInfo])
}

func TestExtract_InfoRawFallback(t *testing.T) {
	e := New()

	// No labeled description and no clause pattern, but the message names a
	// type and is short enough to stand as the description itself.
	fields := e.Extract("Sổ đỏ đứng tên em ở Long An")

	assert.Equal(t, "Bất động sản", fields[FieldCollateralType])
	assert.Equal(t, "Sổ đỏ đứng tên em ở Long An", fields[FieldCollateralInfo])
}

func TestExtract_InfoFallbackBounds(t *testing.T) {
	e := New()

	// Too short to be a usable description.
	fields := e.Extract("sổ đỏ")
	assert.Equal(t, "Bất động sản", fields[FieldCollateralType])
	assert.NotContains(t, fields, FieldCollateralInfo)

	// No recognized type means no fallback at all.
	fields = e.Extract("em sẽ gửi thông tin chi tiết sau nhé, cảm ơn anh")
	assert.NotContains(t, fields, FieldCollateralInfo)
}

func TestExtract_CollateralImage(t *testing.T) {
	e := New()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"provided", "em đã gửi hình căn nhà qua zalo rồi", "Đã cung cấp hình ảnh"},
		{"attached", "hình chụp xe em đính kèm bên dưới", "Đã cung cấp hình ảnh"},
		{"missing", "em chưa có hình chụp tài sản", "Chưa có hình ảnh"},
		{"missing wins over provided", "em chưa gửi hình, mai em chụp", "Chưa có hình ảnh"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := e.Extract(tc.message)
			assert.Equal(t, tc.expected, fields[FieldCollateralImage])
		})
	}
}

func TestExtract_EmptyMessage(t *testing.T) {
	e := New()

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   "))
}
