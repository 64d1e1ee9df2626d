// internal/extraction/financial/extractor_test.go
package financial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_SalaryProfile(t *testing.T) {
	fields := New().Extract("Lương 25 triệu/tháng, làm tại Công ty ABC, chức vụ nhân viên kinh doanh")

	assert.Equal(t, int64(25_000_000), fields[FieldMonthlyIncome])
	assert.Equal(t, "Lương", fields[FieldPrimaryIncomeSource])
	assert.NotEmpty(t, fields[FieldCompanyName])
	assert.NotEmpty(t, fields[FieldJobTitle])
}

func TestExtract_MonthlyIncomeFormats(t *testing.T) {
	tests := []struct {
		message  string
		expected int64
	}{
		{"thu nhập khoảng 30 triệu mỗi tháng", 30_000_000},
		{"lương tầm 12,5 triệu", 12_500_000},
		{"em kiếm được 500 nghìn", 500_000},
	}
	for _, tt := range tests {
		fields := New().Extract(tt.message)
		assert.Equal(t, tt.expected, fields[FieldMonthlyIncome], tt.message)
	}
}

func TestExtract_IncomeSource(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"tôi buôn bán, có cửa hàng riêng", "Kinh doanh"},
		{"thu nhập từ đầu tư cổ phiếu và cho thuê nhà", "Đầu tư"},
		{"em là công nhân đi làm ở khu công nghiệp", "Lương"},
	}
	for _, tt := range tests {
		fields := New().Extract(tt.message)
		assert.Equal(t, tt.expected, fields[FieldPrimaryIncomeSource], tt.message)
	}
}

func TestExtract_JobTitleFallbackList(t *testing.T) {
	// No labeled capture; the closed title list fires instead.
	fields := New().Extract("tôi là kế toán của một công ty nhỏ")
	assert.Equal(t, "Kế Toán", fields[FieldJobTitle])
}

func TestExtract_WorkExperience(t *testing.T) {
	fields := New().Extract("tôi có 5 năm kinh nghiệm")
	assert.Equal(t, 5.0, fields[FieldWorkExperience])

	// Decimal comma normalizes to a decimal point.
	fields = New().Extract("kinh nghiệm 2,5 năm")
	assert.Equal(t, 2.5, fields[FieldWorkExperience])

	fields = New().Extract("em mới ra trường chưa có kinh nghiệm")
	assert.Equal(t, 0.0, fields[FieldWorkExperience])
}

func TestExtract_OtherIncomeGated(t *testing.T) {
	// Without an indicator phrase no secondary income is read, even though
	// a monetary phrase is present.
	fields := New().Extract("lương 20 triệu")
	_, ok := fields[FieldOtherIncomeAmount]
	assert.False(t, ok)

	fields = New().Extract("ngoài ra thu nhập khác khoảng 5 triệu")
	assert.Equal(t, int64(5_000_000), fields[FieldOtherIncomeAmount])
}

func TestExtract_TotalAssets(t *testing.T) {
	fields := New().Extract("tổng tài sản khoảng 3 tỷ")
	assert.Equal(t, int64(3_000_000_000), fields[FieldTotalAssets])

	// The unit word is optional in the assets pattern.
	fields = New().Extract("tài sản: 500000000")
	assert.Equal(t, int64(500_000_000), fields[FieldTotalAssets])
}

func TestExtract_BankName(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"em nhận lương qua Vietcombank", "Vietcombank"},
		{"tài khoản VCB", "Vietcombank"},
		{"dùng techcombank lâu rồi", "Techcombank"},
	}
	for _, tt := range tests {
		fields := New().Extract(tt.message)
		assert.Equal(t, tt.expected, fields[FieldBankName], tt.message)
	}

	// Unknown banks fall back to the labeled capture.
	fields := New().Extract("tài khoản tại ngân hàng hợp tác xã")
	assert.NotEmpty(t, fields[FieldBankName])
}

func TestExtract_EmptyAndUnmatched(t *testing.T) {
	assert.Empty(t, New().Extract(""))

	fields := New().Extract("dạ để em xem lại")
	for _, name := range Fields() {
		_, present := fields[name]
		require.False(t, present, "field %s should be absent", name)
	}
}
