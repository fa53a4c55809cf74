package model

import "context"

// Provider abstracts LLM provider implementations (Gemini, Groq, OpenAI, Anthropic,
// Ollama) behind the single capability the agent loop needs.
//
// This interface is defined in the model package (not provider package) to avoid
// import cycles: provider implementations import model, and the agent package uses
// the Provider interface without importing the provider package.
type Provider interface {
	// RunQuery sends the full ordered conversation and returns the raw text of the
	// model's reply. Implementations ask the vendor for a single JSON object.
	RunQuery(ctx context.Context, messages []Message) (string, error)

	// Name returns the provider ID (e.g. "groq").
	Name() string

	// GetModel returns the model name used for API calls.
	GetModel() string
}
