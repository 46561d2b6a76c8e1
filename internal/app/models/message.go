package models

import "time"

// MessageStatus progresses monotonically after send: sent -> delivered -> seen.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageSeen      MessageStatus = "seen"
)

// Message is a single direct message inside a thread.
type Message struct {
	ID          string         `json:"id"`
	SenderID    string         `json:"senderId"`
	Body        string         `json:"body"`
	SentAt      time.Time      `json:"sentAt"`
	Attachments []ContentMedia `json:"attachments,omitempty"`
	Status      MessageStatus  `json:"status"`
}

// MessageThread is a direct conversation between participants.
type MessageThread struct {
	ID             string    `json:"id"`
	ParticipantIDs []string  `json:"participantIds"`
	LastMessageAt  time.Time `json:"lastMessageAt"`
	UnreadCount    int       `json:"unreadCount"`
	Messages       []Message `json:"messages"`
	Typing         bool      `json:"typing,omitempty"`
}
