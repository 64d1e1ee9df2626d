// internal/workers/intake/extract-existing-debt/handler_test.go
package extractexistingdebt

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

func TestHandler_Execute_NoDebtCompletesStep(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-401",
		Message:        "Em không có nợ gì cả",
	})

	assert.NoError(t, err)
	assert.Equal(t, false, output.ExtractedFields["hasExistingDebt"])
	assert.NotContains(t, output.ExtractedFields, "totalDebtAmount")
	assert.True(t, output.StepComplete)
}

func TestHandler_Execute_FullDebtProfile(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-402",
		Message:        "Em đang nợ ngân hàng 800 triệu vay thế chấp, mỗi tháng trả 15 triệu",
	})

	assert.NoError(t, err)
	assert.Equal(t, true, output.ExtractedFields["hasExistingDebt"])
	assert.Equal(t, int64(800_000_000), output.ExtractedFields["totalDebtAmount"])
	assert.Equal(t, int64(15_000_000), output.ExtractedFields["monthlyDebtPayment"])
	assert.Equal(t, "Vay thế chấp", output.ExtractedFields["existingLoans"])
	assert.True(t, output.StepComplete)
	assert.Empty(t, output.ValidationMessages)
}

func TestHandler_Execute_DebtWithoutTotalHoldsStepOpen(t *testing.T) {
	handler := createTestHandler(t)
	ctx := context.Background()

	first, err := handler.Execute(ctx, &Input{
		ConversationID: "conv-403",
		Message:        "Em có khoản vay ở ngân hàng",
	})
	assert.NoError(t, err)
	assert.Equal(t, true, first.ExtractedFields["hasExistingDebt"])
	assert.False(t, first.StepComplete)

	second, err := handler.Execute(ctx, &Input{
		ConversationID:    "conv-403",
		Message:           "dư nợ còn 300 triệu",
		ConversationState: first.ConversationState,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(300_000_000), second.ConversationState["totalDebtAmount"])
	assert.True(t, second.StepComplete)
}

func TestHandler_Execute_CICGroupAndHistory(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-404",
		Message:        "Dư nợ tầm 1 tỷ, em thuộc nhóm 2, từng trễ hạn",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1_000_000_000), output.ExtractedFields["totalDebtAmount"])
	assert.Equal(t, "Nhóm 2", output.ExtractedFields["cicCreditScoreGroup"])
	assert.Equal(t, "Có vấn đề tín dụng", output.ExtractedFields["creditHistory"])
	assert.True(t, output.StepComplete)
}

func TestHandler_Execute_GoodHistoryWithoutTotal(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-405",
		Message:        "Em đang vay mua xe, luôn trả đúng hạn",
	})

	assert.NoError(t, err)
	assert.Equal(t, true, output.ExtractedFields["hasExistingDebt"])
	assert.Equal(t, "Tín dụng tốt", output.ExtractedFields["creditHistory"])
	assert.Equal(t, "Vay mua xe", output.ExtractedFields["existingLoans"])
	assert.False(t, output.StepComplete)
}

func TestHandler_Execute_NothingExtractable(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-406",
		Message:        "dạ để em xem lại đã",
	})

	assert.NoError(t, err)
	assert.Empty(t, output.ExtractedFields)
	assert.False(t, output.StepComplete)
}
