package model

import "time"

type Notification struct {
	NotificationID string    `json:"notification_id"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
	Read           bool      `json:"read"`
}

const (
	AuthorUser  = "user"
	AuthorAgent = "agent"
)

type SupportMessage struct {
	MessageID string    `json:"message_id"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// KnownRecipient is a previously used transfer destination, deduplicated by
// IBAN.
type KnownRecipient struct {
	RecipientID string `json:"recipient_id"`
	Name        string `json:"name"`
	IBAN        string `json:"iban"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
