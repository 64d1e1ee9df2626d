// internal/workers/intake/extract-personal-info/models.go
package extractpersonalinfo

type Input struct {
	ConversationID    string                 `json:"conversationId"`
	Message           string                 `json:"message"`
	ConversationState map[string]interface{} `json:"conversationState"`
}

type Output struct {
	ExtractedFields    map[string]interface{} `json:"extractedFields"`
	ConversationState  map[string]interface{} `json:"conversationState"`
	ValidationMessages []string               `json:"validationMessages"`
	StepComplete       bool                   `json:"stepComplete"`
}
