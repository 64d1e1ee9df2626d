// internal/extraction/debt/extractor_test.go
package debt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_FullDebtProfile(t *testing.T) {
	fields := New().Extract("Có nợ 800 triệu, trả 15 triệu mỗi tháng, nhóm 2")

	assert.Equal(t, true, fields[FieldHasExistingDebt])
	assert.Equal(t, int64(800_000_000), fields[FieldTotalDebtAmount])
	assert.Equal(t, int64(15_000_000), fields[FieldMonthlyDebtPayment])
	assert.Equal(t, "Nhóm 2", fields[FieldCICGroup])
}

// The no-debt patterns precede the has-debt patterns: "không có nợ"
// contains "có nợ" and must resolve to false.
func TestExtract_NoDebtWins(t *testing.T) {
	fields := New().Extract("không có nợ")
	assert.Equal(t, false, fields[FieldHasExistingDebt])
}

// The gate: once the flag is false, no other debt field is populated even
// when a monetary phrase co-occurs.
func TestExtract_ConditionalGate(t *testing.T) {
	fields := New().Extract("em không có nợ, chỉ có 500 triệu tiết kiệm")

	require.Equal(t, false, fields[FieldHasExistingDebt])
	for _, name := range []string{
		FieldTotalDebtAmount, FieldMonthlyDebtPayment,
		FieldCICGroup, FieldCreditHistory, FieldExistingLoans,
	} {
		_, present := fields[name]
		assert.False(t, present, "field %s should be gated off", name)
	}
}

func TestExtract_UnknownFlagYieldsNothing(t *testing.T) {
	fields := New().Extract("để em hỏi lại kế toán")
	assert.Empty(t, fields)
}

func TestExtract_CICGroupDescriptors(t *testing.T) {
	fields := New().Extract("đang có nợ, cic nợ cần chú ý")
	assert.Equal(t, "Nhóm 2", fields[FieldCICGroup])

	fields = New().Extract("còn nợ và từng bị xếp nhóm 5")
	assert.Equal(t, "Nhóm 5", fields[FieldCICGroup])
}

func TestExtract_CreditHistory(t *testing.T) {
	// Labeled capture first.
	fields := New().Extract("có nợ, lịch sử tín dụng: chưa từng trễ hạn")
	assert.Equal(t, "chưa từng trễ hạn", fields[FieldCreditHistory])

	// Good phrase list.
	fields = New().Extract("đang vay nhưng luôn trả đúng hạn")
	assert.Equal(t, "Tín dụng tốt", fields[FieldCreditHistory])

	// Bad phrase list.
	fields = New().Extract("có nợ và từng bị nợ xấu")
	assert.Equal(t, "Có vấn đề tín dụng", fields[FieldCreditHistory])
}

func TestExtract_ExistingLoans_MultiValue(t *testing.T) {
	fields := New().Extract("đang vay thế chấp ngân hàng và nợ thẻ tín dụng")
	assert.Equal(t, "Vay thế chấp, Thẻ tín dụng", fields[FieldExistingLoans])
}

func TestExtract_ExistingLoans_LabeledCapture(t *testing.T) {
	fields := New().Extract("có nợ, các khoản vay hiện tại gồm vay mua xe tại VIB")
	assert.Equal(t, "vay mua xe tại vib", fields[FieldExistingLoans])
}

func TestExtract_Deterministic(t *testing.T) {
	message := "Có nợ 800 triệu, trả 15 triệu mỗi tháng, nhóm 2"
	assert.Equal(t, New().Extract(message), New().Extract(message))
}
