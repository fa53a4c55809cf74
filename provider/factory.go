package provider

import (
	"fmt"
	"strings"

	"projgen/model"
)

// NewProvider creates a provider based on configuration.
//
// This is the centralized factory function for creating any provider type. The
// set of types is closed; the session shell calls it once at startup and keeps
// the result for the whole session.
//
// Empty BaseURL and Model fall back to DefaultBaseURL and DefaultModel. A missing
// APIKey is accepted here and reported as ErrMissingAPIKey by the first RunQuery.
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor fails (e.g., an unparsable Ollama URL).
func NewProvider(cfg Config) (model.Provider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL(cfg.Type)
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = DefaultModel(cfg.Type)
	}

	switch cfg.Type {
	case ProviderTypeGemini, ProviderTypeGroq, ProviderTypeOpenAI, ProviderTypeOpenRouter:
		return NewOpenAIProvider(string(cfg.Type), baseURL, cfg.APIKey, modelName), nil
	case ProviderTypeAnthropic:
		return NewAnthropicProvider(baseURL, cfg.APIKey, modelName), nil
	case ProviderTypeOllama:
		return NewOllamaProvider(baseURL, modelName)
	default:
		return nil, fmt.Errorf("unsupported LLM choice: %s", cfg.Type)
	}
}

// MapProviderIDToType converts a config provider ID to a ProviderType.
//
// Matching is case-insensitive. For unknown IDs, returns the ID cast as
// ProviderType (the factory will error).
func MapProviderIDToType(id string) ProviderType {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, opt := range SupportedProviders() {
		if string(opt.Type) == id {
			return opt.Type
		}
	}
	return ProviderType(id)
}
