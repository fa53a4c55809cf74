package model

import "time"

// Conversation roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one turn of the conversation sent to the LLM.
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// NewMessage stamps a message with the current time.
func NewMessage(role, content string) Message {
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}
