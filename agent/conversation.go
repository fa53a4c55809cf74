package agent

import (
	"slices"

	"projgen/model"
)

// Conversation is the append-only message history of one request. It is resent
// in full on every LLM call.
type Conversation struct {
	messages []model.Message
}

// NewConversation seeds a conversation with the system prompt and the user's request.
func NewConversation(systemPrompt, query string) *Conversation {
	return &Conversation{
		messages: []model.Message{
			model.NewMessage(model.RoleSystem, systemPrompt),
			model.NewMessage(model.RoleUser, query),
		},
	}
}

func (c *Conversation) Append(role, content string) {
	c.messages = append(c.messages, model.NewMessage(role, content))
}

// Observe appends a loop-synthesized observation as an assistant message.
func (c *Conversation) Observe(result model.ToolResult) {
	c.Append(model.RoleAssistant, model.Observation{Result: result}.Serialized())
}

// Messages returns a copy of the history.
func (c *Conversation) Messages() []model.Message {
	return slices.Clone(c.messages)
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Last returns the newest message. ok is false for an empty conversation.
func (c *Conversation) Last() (msg model.Message, ok bool) {
	if len(c.messages) == 0 {
		return model.Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}
