// internal/extraction/rules/rules.go
package rules

import "fmt"

// Rule is a declarative {min, max, enum} constraint for one extracted field.
// Rules are consumed after extraction; they never influence what the
// extractors return.
type Rule struct {
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
	Enum []string `json:"enum,omitempty"`
}

// Set maps field names to their rules for one intake step.
type Set map[string]Rule

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// Num declares a numeric range rule.
func Num(min, max float64) Rule {
	return Rule{Min: &min, Max: &max}
}

// OneOf declares a closed-set rule.
func OneOf(values ...string) Rule {
	return Rule{Enum: values}
}

// Check validates extracted fields against the step's rule set. Fields
// without a rule pass; fields absent from the map are not reported — absence
// is a re-prompt condition for the dialog, not a validation failure. A
// failed rule yields a human-readable message and never removes the value.
func Check(fields map[string]interface{}, set Set) *ValidationResult {
	errors := []ValidationError{}

	for field, value := range fields {
		rule, ok := set[field]
		if !ok {
			continue
		}

		if num, ok := asNumber(value); ok {
			if rule.Min != nil && num < *rule.Min {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("giá trị %v nhỏ hơn mức tối thiểu %v", value, *rule.Min),
					Code:    "MINIMUM_VIOLATION",
				})
			}
			if rule.Max != nil && num > *rule.Max {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("giá trị %v vượt mức tối đa %v", value, *rule.Max),
					Code:    "MAXIMUM_VIOLATION",
				})
			}
		}

		if len(rule.Enum) > 0 {
			if s, ok := value.(string); ok && !contains(rule.Enum, s) {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: fmt.Sprintf("giá trị %q không thuộc danh sách cho phép", s),
					Code:    "ENUM_VIOLATION",
				})
			}
		}
	}

	return &ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// GetErrorMessages returns a simple list of error messages.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
