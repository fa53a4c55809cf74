// Package provider implements the LLM clients the agent loop talks to.
//
// Every provider satisfies model.Provider: one RunQuery call per turn, the whole
// conversation resent each time, and the vendor asked for a single JSON object in
// whatever way it supports. Providers are stateless apart from credentials and
// the model name.
//
// # Architecture
//
//   - model.Provider defines the contract (interface)
//   - provider.OpenAIProvider serves every OpenAI-compatible endpoint: OpenAI,
//     OpenRouter, Groq and Gemini (through its OpenAI compatibility layer)
//   - provider.AnthropicProvider uses the Anthropic Messages API
//   - provider.OllamaProvider talks to a local Ollama server
//   - provider.NewProvider() selects one of them once at startup
//
// # Usage
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:   provider.ProviderTypeGroq,
//	    APIKey: os.Getenv("GROQ_API_KEY"),
//	})
//	if err != nil {
//	    // handle error
//	}
//	raw, err := p.RunQuery(ctx, messages)
package provider

import "errors"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeGemini     ProviderType = "gemini"
	ProviderTypeGroq       ProviderType = "groq"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeAnthropic  ProviderType = "anthropic"
	ProviderTypeOllama     ProviderType = "ollama"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // unused for Ollama
}

// ErrMissingAPIKey is returned by RunQuery when the provider has no credential.
// Construction succeeds without a key so the failure shows up as an
// authentication error on the first query rather than at startup.
var ErrMissingAPIKey = errors.New("missing API key")

// Option describes a selectable provider for the startup menu.
type Option struct {
	Type  ProviderType
	Label string
}

// SupportedProviders lists providers in menu order. Gemini and Groq come first.
func SupportedProviders() []Option {
	return []Option{
		{Type: ProviderTypeGemini, Label: "Gemini"},
		{Type: ProviderTypeGroq, Label: "Groq"},
		{Type: ProviderTypeOpenAI, Label: "OpenAI"},
		{Type: ProviderTypeOpenRouter, Label: "OpenRouter"},
		{Type: ProviderTypeAnthropic, Label: "Anthropic"},
		{Type: ProviderTypeOllama, Label: "Ollama (local)"},
	}
}

// DefaultBaseURL returns the API base URL used when the config leaves it empty.
func DefaultBaseURL(t ProviderType) string {
	switch t {
	case ProviderTypeGemini:
		return "https://generativelanguage.googleapis.com/v1beta/openai/"
	case ProviderTypeGroq:
		return "https://api.groq.com/openai/v1"
	case ProviderTypeOpenAI:
		return "https://api.openai.com/v1"
	case ProviderTypeOpenRouter:
		return "https://openrouter.ai/api/v1"
	case ProviderTypeAnthropic:
		return "https://api.anthropic.com"
	case ProviderTypeOllama:
		return "http://localhost:11434"
	default:
		return ""
	}
}

// DefaultModel returns the model used when the config leaves it empty.
func DefaultModel(t ProviderType) string {
	switch t {
	case ProviderTypeGemini:
		return "gemini-2.0-flash"
	case ProviderTypeGroq:
		return "llama-3.3-70b-versatile"
	case ProviderTypeOpenAI:
		return "gpt-4o-mini"
	case ProviderTypeOpenRouter:
		return "meta-llama/llama-3.3-70b-instruct"
	case ProviderTypeAnthropic:
		return "claude-sonnet-4-5-20250929"
	case ProviderTypeOllama:
		return "llama3.1:latest"
	default:
		return ""
	}
}
