// internal/workers/intake/notify-advisor/models.go
package notifyadvisor

type Input struct {
	ConversationID    string                 `json:"conversationId"`
	ApplicationID     string                 `json:"applicationId"`
	ConversationState map[string]interface{} `json:"conversationState"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
