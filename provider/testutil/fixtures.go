package testutil

import (
	"time"

	"projgen/model"
)

// TestMessages returns a sample agent conversation for testing
func TestMessages() []model.Message {
	return []model.Message{
		{
			Role:      model.RoleSystem,
			Content:   "You are a project generator. Reply with one JSON step.",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleUser,
			Content:   "Create a hello world page",
			Timestamp: time.Now(),
		},
		{
			Role:      model.RoleAssistant,
			Content:   `{"step":"plan","content":"Create index.html"}`,
			Timestamp: time.Now(),
		},
	}
}

// SingleUserMessage returns a single user message for simple tests
func SingleUserMessage(content string) []model.Message {
	return []model.Message{
		{
			Role:      model.RoleUser,
			Content:   content,
			Timestamp: time.Now(),
		},
	}
}

// EmptyMessages returns an empty message slice for edge case testing
func EmptyMessages() []model.Message {
	return []model.Message{}
}

// SystemMessage returns a system message for testing
func SystemMessage(content string) model.Message {
	return model.Message{
		Role:      model.RoleSystem,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Step replies in the shape the agent loop expects from a provider.
const (
	PlanReply   = `{"step":"plan","content":"Create a directory and a file"}`
	FinalReply  = `{"step":"final","content":"Done"}`
	OutputReply = `{"step":"output","content":"Project created"}`
)
