package testutil

import (
	"context"
	"errors"
	"sync"

	"projgen/model"
)

// ErrScriptExhausted is returned by a scripted MockProvider once every canned
// reply has been consumed.
var ErrScriptExhausted = errors.New("mock provider: no more scripted replies")

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// Configurable response
	RunQueryFunc func(ctx context.Context, messages []model.Message) (string, error)

	mu           sync.Mutex
	calls        [][]model.Message
	currentModel string
}

// NewMockProvider creates a mock provider that answers every query with a final step.
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.RunQueryFunc = mock.defaultRunQuery
	return mock
}

// NewScriptedProvider returns a mock that replies with each entry of replies in order.
func NewScriptedProvider(replies ...string) *MockProvider {
	mock := NewMockProvider("scripted-model")
	next := 0
	mock.RunQueryFunc = func(ctx context.Context, messages []model.Message) (string, error) {
		if next >= len(replies) {
			return "", ErrScriptExhausted
		}
		reply := replies[next]
		next++
		return reply, nil
	}
	return mock
}

func (m *MockProvider) defaultRunQuery(ctx context.Context, messages []model.Message) (string, error) {
	return `{"step":"final","content":"Mock response"}`, nil
}

// RunQuery records a snapshot of messages and delegates to RunQueryFunc.
func (m *MockProvider) RunQuery(ctx context.Context, messages []model.Message) (string, error) {
	snapshot := make([]model.Message, len(messages))
	copy(snapshot, messages)

	m.mu.Lock()
	m.calls = append(m.calls, snapshot)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.RunQueryFunc(ctx, messages)
}

// Calls returns the conversation passed to each RunQuery call so far.
func (m *MockProvider) Calls() [][]model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]model.Message, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}
