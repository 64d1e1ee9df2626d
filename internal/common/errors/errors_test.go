// internal/common/errors/errors_test.go
package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRetryCount(t *testing.T) {
	assert.Equal(t, 3, GetRetryCount(ErrCodeApplicationInsertFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeNotificationSendFailed))
	assert.Equal(t, 3, GetRetryCount(ErrCodeSessionSaveFailed))
	assert.Equal(t, 2, GetRetryCount(ErrCodeQueryTimeout))
	assert.Equal(t, 0, GetRetryCount(ErrCodeDuplicateApplication))
	assert.Equal(t, 0, GetRetryCount(ErrCodeParseError))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeDatabaseConnectionFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeFieldValidationFailed))
}

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewApplicationInsertFailedError(fmt.Errorf("connection reset"))

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "APPLICATION_INSERT_FAILED", bpmnErr.Code)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, "APPLICATION_INSERT_FAILED", bpmnErr.ErrorVariables["originalErrorCode"])
}

func TestConvertToBPMNError_NonRetryable(t *testing.T) {
	stdErr := NewDuplicateApplicationError("conv-001")

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "DUPLICATE_APPLICATION", bpmnErr.Code)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.False(t, bpmnErr.Retryable)
}

func TestBPMNError_ToErrorVariables(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewSessionSaveFailedError("conv-002", fmt.Errorf("redis down")))

	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "SESSION_SAVE_FAILED", vars["errorCode"])
	assert.Equal(t, true, vars["retryable"])
	assert.Contains(t, vars["errorDetails"], "conv-002")
}

func TestConstructors_CodeAndRetryable(t *testing.T) {
	boom := fmt.Errorf("boom")

	tests := []struct {
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{NewParseError(boom), ErrCodeParseError, false},
		{NewSessionLoadFailedError("conv-1", boom), ErrCodeSessionLoadFailed, true},
		{NewDatabaseConnectionFailedError(boom), ErrCodeDatabaseConnectionFailed, true},
		{NewQueryExecutionFailedError("insert", boom), ErrCodeQueryExecutionFailed, true},
		{NewQueryTimeoutError("select"), ErrCodeQueryTimeout, true},
		{NewNotificationSendFailedError("email", boom), ErrCodeNotificationSendFailed, true},
		{NewAuditIndexFailedError(boom), ErrCodeAuditIndexFailed, true},
		{NewFieldValidationFailedError("loanAmount out of range"), ErrCodeFieldValidationFailed, false},
		{NewBusinessRuleError("intake incomplete", "missing collateral step"), "BUSINESS_RULE_VIOLATION", false},
		{NewExternalServiceError("ses", boom), "EXTERNAL_SERVICE_ERROR", true},
		{NewTimeoutError("zeebe", boom), "TIMEOUT_ERROR", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.retryable, tt.err.Retryable, string(tt.code))
		assert.NotEmpty(t, tt.err.Message)
		assert.False(t, tt.err.Timestamp.IsZero())
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "SESSION", GetErrorCategory(ErrCodeSessionLoadFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeApplicationInsertFailed))
	assert.Equal(t, "NOTIFICATION", GetErrorCategory(ErrCodeNotificationSendFailed))
	assert.Equal(t, "AUDIT", GetErrorCategory(ErrCodeAuditIndexFailed))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeParseError))
	assert.Equal(t, "OTHER", GetErrorCategory("SOMETHING_ELSE"))
}
