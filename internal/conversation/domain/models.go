package domain

import "time"

type MessageDirection string

const (
	MessageSent     MessageDirection = "sent"
	MessageReceived MessageDirection = "received"
)

// Message types accepted by the send endpoint.
const (
	TypeColdMessage  = "cold_message"
	TypeConversation = "conversation"
)

// Channels a message travelled over.
const (
	ChannelEmail = "email"
	ChannelChat  = "chat"
)

type Message struct {
	ID        string           `json:"id"`
	LeadID    string           `json:"leadId"`
	Content   string           `json:"content"`
	Type      MessageDirection `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Platform  string           `json:"platform"`
}
