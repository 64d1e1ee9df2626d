// internal/models/conversation.go
package models

// ConversationState holds every field collected so far across the intake
// conversation, keyed by field name. Values are whatever the extractors
// produce (string, int, int64, float64, bool). Zeebe round-trips numbers
// as float64, so consumers must not assume the original numeric type.
type ConversationState map[string]interface{}

// Merge returns a new state with the extracted fields applied on top of s.
// A newer value replaces an older one, but an empty value never replaces a
// filled one, so the state only ever grows.
func (s ConversationState) Merge(fields map[string]interface{}) ConversationState {
	merged := make(ConversationState, len(s)+len(fields))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range fields {
		if isEmptyValue(v) {
			continue
		}
		merged[k] = v
	}
	return merged
}

// Has reports whether the field has been collected with a non-empty value.
func (s ConversationState) Has(field string) bool {
	v, ok := s[field]
	return ok && !isEmptyValue(v)
}

// HasAll reports whether every listed field has been collected.
func (s ConversationState) HasAll(fields []string) bool {
	for _, f := range fields {
		if !s.Has(f) {
			return false
		}
	}
	return true
}

// isEmptyValue treats nil and the empty string as "nothing collected".
// Numeric zero stays meaningful (0 dependents, 0 years of experience).
func isEmptyValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if str, ok := v.(string); ok {
		return str == ""
	}
	return false
}
