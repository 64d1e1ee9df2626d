// internal/models/application.go
package models

type LoanApplication struct {
	ID              string                 `json:"id"`
	ConversationID  string                 `json:"conversationId"`
	CustomerID      string                 `json:"customerId,omitempty"`
	ApplicationData map[string]interface{} `json:"applicationData"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}

// Application statuses
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewing = "reviewing"
	ApplicationStatusApproved  = "approved"
	ApplicationStatusRejected  = "rejected"
)
