// internal/workers/intake/extract-collateral/models.go
package extractcollateral

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
