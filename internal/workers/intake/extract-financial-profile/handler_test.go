// internal/workers/intake/extract-financial-profile/handler_test.go
package extractfinancialprofile

import (
	"context"
	"testing"
	"time"

	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupTestSessions(t *testing.T) *session.Store {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	return session.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Minute)
}

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), setupTestSessions(t), nil, logger.NewTestLogger(t))
}

func TestHandler_Execute_SalariedProfile(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-301",
		Message:        "Lương em 25 triệu/tháng, làm kế toán tại công ty TNHH Minh Phát, 5 năm kinh nghiệm",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(25_000_000), output.ExtractedFields["monthlyIncome"])
	assert.Equal(t, "Lương", output.ExtractedFields["primaryIncomeSource"])
	assert.Equal(t, "Minh Phát", output.ExtractedFields["companyName"])
	assert.Equal(t, "Kế Toán", output.ExtractedFields["jobTitle"])
	assert.Equal(t, 5.0, output.ExtractedFields["workExperience"])
	assert.True(t, output.StepComplete)
	assert.Empty(t, output.ValidationMessages)
}

func TestHandler_Execute_BusinessProfile(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-302",
		Message:        "Em kinh doanh cửa hàng tạp hóa, thu nhập khoảng 40 triệu mỗi tháng, tài khoản ở Vietcombank",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(40_000_000), output.ExtractedFields["monthlyIncome"])
	assert.Equal(t, "Kinh doanh", output.ExtractedFields["primaryIncomeSource"])
	assert.Equal(t, "Vietcombank", output.ExtractedFields["bankName"])
	assert.True(t, output.StepComplete)
}

func TestHandler_Execute_SecondaryIncome(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-303",
		Message:        "Lương cứng của em 20 triệu, có thu nhập thêm từ việc làm thêm buổi tối khoảng 5 triệu",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20_000_000), output.ExtractedFields["monthlyIncome"])
	assert.Equal(t, int64(5_000_000), output.ExtractedFields["otherIncomeAmount"])
	assert.Equal(t, "Lương", output.ExtractedFields["primaryIncomeSource"])
	assert.True(t, output.StepComplete)
}

func TestHandler_Execute_AssetsAndBank(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-304",
		Message:        "Tổng tài sản của em tầm 2 tỷ, gửi tiết kiệm ở Techcombank",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2_000_000_000), output.ExtractedFields["totalAssets"])
	assert.Equal(t, "Techcombank", output.ExtractedFields["bankName"])
}

func TestHandler_Execute_NoExperience(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-305",
		Message:        "Em mới ra trường, chưa có kinh nghiệm làm việc",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, output.ExtractedFields["workExperience"])
	assert.False(t, output.StepComplete)
}

func TestHandler_Execute_IncomeBelowMinimum(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-306",
		Message:        "thu nhập của em chỉ 500 nghìn mỗi tháng",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(500_000), output.ExtractedFields["monthlyIncome"])
	assert.NotEmpty(t, output.ValidationMessages)
	assert.Contains(t, output.ValidationMessages[0], "monthlyIncome")
}

func TestHandler_Execute_CompletesWithPriorState(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-307",
		Message:        "em làm nhân viên văn phòng",
		ConversationState: map[string]interface{}{
			"monthlyIncome": float64(30_000_000),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Lương", output.ExtractedFields["primaryIncomeSource"])
	assert.Equal(t, "Nhân Viên Văn Phòng", output.ExtractedFields["jobTitle"])
	assert.Equal(t, float64(30_000_000), output.ConversationState["monthlyIncome"])
	assert.True(t, output.StepComplete)
}
