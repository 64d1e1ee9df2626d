// internal/workers/intake/persist-application/models.go
package persistapplication

type Input struct {
	ConversationID    string                 `json:"conversationId"`
	CustomerID        string                 `json:"customerId,omitempty"`
	ConversationState map[string]interface{} `json:"conversationState"`
}

type Output struct {
	ApplicationID     string `json:"applicationId"`
	ApplicationStatus string `json:"applicationStatus"`
	CreatedAt         string `json:"createdAt"` // ISO 8601
}
