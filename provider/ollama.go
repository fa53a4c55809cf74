package provider

import (
	"context"
	"fmt"

	"projgen/config"
	"projgen/model"
	"projgen/ollama"
)

// OllamaProvider wraps ollama.Client to implement model.Provider.
//
// It converts model.Message to api.Message and requests JSON output through
// Ollama's format option. Ollama needs no API key.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: The Ollama server URL (e.g., "http://localhost:11434").
//     If empty, defaults to "http://localhost:11434".
//   - model: The model name to use (e.g., "llama3.1:latest").
//     If empty, defaults to "llama3.1:latest".
//
// Returns an error if the baseURL is invalid.
func NewOllamaProvider(baseURL, model string) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}
	if config.Debug {
		config.DebugLog.Debug().Str("host", client.BaseURL()).Str("model", client.GetModel()).Msg("ollama client ready")
	}

	return &OllamaProvider{
		client: client,
	}, nil
}

// RunQuery implements model.Provider.
func (p *OllamaProvider) RunQuery(ctx context.Context, messages []model.Message) (string, error) {
	reply, err := p.client.ChatJSON(ctx, ConvertToOllamaMessages(messages))
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	return reply, nil
}

// Name implements model.Provider.
func (p *OllamaProvider) Name() string {
	return string(ProviderTypeOllama)
}

// GetModel implements model.Provider (direct passthrough).
func (p *OllamaProvider) GetModel() string {
	return p.client.GetModel()
}
