// internal/extraction/rules/rules_test.go
package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() Set {
	return Set{
		"loanAmount": Num(10_000_000, 50_000_000_000),
		"loanTerm":   OneOf("1 năm", "2 năm", "3 năm", "5 năm"),
		"dependents": Num(0, 10),
	}
}

func TestCheck_Valid(t *testing.T) {
	result := Check(map[string]interface{}{
		"loanAmount": int64(2_000_000_000),
		"loanTerm":   "2 năm",
		"dependents": 2,
	}, testSet())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestCheck_RangeViolations(t *testing.T) {
	result := Check(map[string]interface{}{
		"loanAmount": int64(5_000_000),
		"dependents": 15,
	}, testSet())

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	codes := []string{result.Errors[0].Code, result.Errors[1].Code}
	assert.Contains(t, codes, "MINIMUM_VIOLATION")
	assert.Contains(t, codes, "MAXIMUM_VIOLATION")
}

func TestCheck_EnumViolation(t *testing.T) {
	result := Check(map[string]interface{}{"loanTerm": "7 năm"}, testSet())

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "ENUM_VIOLATION", result.Errors[0].Code)
	assert.Equal(t, "loanTerm", result.Errors[0].Field)
	assert.Len(t, result.GetErrorMessages(), 1)
}

func TestCheck_AbsentAndUnruledFieldsPass(t *testing.T) {
	// Absent fields are the dialog's problem, not a validation failure, and
	// fields without a declared rule always pass.
	result := Check(map[string]interface{}{"salesAgentCode": "NV1234"}, testSet())
	assert.True(t, result.Valid)

	result = Check(map[string]interface{}{}, testSet())
	assert.True(t, result.Valid)
}
