// internal/workers/intake/extract-loan-info/handler_test.go
package extractloaninfo

import (
	"context"
	"testing"
	"time"

	"loan-intake-workers/internal/audit"
	"loan-intake-workers/internal/common/logger"
	"loan-intake-workers/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func setupTestSessions(t *testing.T) (*session.Store, *redis.Client) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return session.NewStore(client, 30*time.Minute), client
}

type fakeAuditor struct {
	records []audit.TurnRecord
}

func (f *fakeAuditor) IndexTurn(_ context.Context, rec audit.TurnRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func createTestHandler(t *testing.T) (*Handler, *fakeAuditor) {
	sessions, _ := setupTestSessions(t)
	auditor := &fakeAuditor{}
	handler := NewHandler(LoadConfig(), sessions, auditor, logger.NewTestLogger(t))
	return handler, auditor
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_FullLoanRequest(t *testing.T) {
	handler, auditor := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-001",
		Message:        "Tôi muốn vay 500 triệu mua nhà trong 2 năm",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(500_000_000), output.ExtractedFields["loanAmount"])
	assert.Equal(t, "2 năm", output.ExtractedFields["loanTerm"])
	assert.Equal(t, "Vay mua bất động sản", output.ExtractedFields["loanPurpose"])
	assert.True(t, output.StepComplete)
	assert.Empty(t, output.ValidationMessages)

	assert.Len(t, auditor.records, 1)
	assert.Equal(t, "conv-001", auditor.records[0].ConversationID)
	assert.Equal(t, TaskType, auditor.records[0].TaskType)
	assert.True(t, auditor.records[0].StepComplete)
}

func TestHandler_Execute_MergesPriorState(t *testing.T) {
	handler, _ := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-002",
		Message:        "trong 2 năm, mục đích kinh doanh",
		ConversationState: map[string]interface{}{
			"loanAmount": float64(300_000_000),
		},
	})

	assert.NoError(t, err)
	assert.NotContains(t, output.ExtractedFields, "loanAmount")
	assert.Equal(t, float64(300_000_000), output.ConversationState["loanAmount"])
	assert.Equal(t, "2 năm", output.ConversationState["loanTerm"])
	assert.Equal(t, "Vay kinh doanh", output.ConversationState["loanPurpose"])
	assert.True(t, output.StepComplete)
}

func TestHandler_Execute_IncompleteStep(t *testing.T) {
	handler, _ := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-003",
		Message:        "Tôi muốn vay 500 triệu",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(500_000_000), output.ExtractedFields["loanAmount"])
	assert.False(t, output.StepComplete)
}

func TestHandler_Execute_ValidationMessage(t *testing.T) {
	handler, _ := createTestHandler(t)

	// Below the 10 million minimum.
	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-004",
		Message:        "cho em vay 5 triệu",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5_000_000), output.ExtractedFields["loanAmount"])
	assert.NotEmpty(t, output.ValidationMessages)
	assert.Contains(t, output.ValidationMessages[0], "loanAmount")
}

func TestHandler_Execute_SavesStateToRedis(t *testing.T) {
	sessions, _ := setupTestSessions(t)
	handler := NewHandler(LoadConfig(), sessions, nil, logger.NewTestLogger(t))

	_, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-005",
		Message:        "vay 1 tỷ mua xe",
	})
	assert.NoError(t, err)

	state, err := sessions.Load(context.Background(), "conv-005")
	assert.NoError(t, err)
	assert.Equal(t, float64(1_000_000_000), state["loanAmount"])
	assert.Equal(t, "Vay mua xe", state["loanPurpose"])
}

func TestHandler_Execute_EmptyMessage(t *testing.T) {
	handler, _ := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-006",
		Message:        "",
	})

	assert.NoError(t, err)
	assert.Empty(t, output.ExtractedFields)
	assert.False(t, output.StepComplete)
}

func TestHandler_Execute_NoSessionStore(t *testing.T) {
	handler := NewHandler(LoadConfig(), nil, nil, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		ConversationID: "conv-007",
		Message:        "vay 200 triệu tiêu dùng trong 12 tháng",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(200_000_000), output.ExtractedFields["loanAmount"])
	assert.Equal(t, "1 năm", output.ExtractedFields["loanTerm"])
	assert.Equal(t, "Vay tiêu dùng", output.ExtractedFields["loanPurpose"])
	assert.True(t, output.StepComplete)
}
