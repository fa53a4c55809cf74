package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"projgen/model"
)

// OpenAIProvider implements model.Provider against any OpenAI-compatible chat
// completions endpoint using the official OpenAI Go SDK. Gemini, Groq, OpenAI and
// OpenRouter differ only in base URL, key and model.
type OpenAIProvider struct {
	client  openai.Client
	name    string
	model   string
	baseURL string
	apiKey  string
}

// NewOpenAIProvider creates a new OpenAI-compatible provider instance.
//
// Parameters:
//   - name: provider ID reported by Name() and used in error messages
//   - baseURL: API base URL (e.g. "https://api.groq.com/openai/v1")
//   - apiKey: API key; may be empty (RunQuery then fails with ErrMissingAPIKey)
//   - model: model name sent with every request
func NewOpenAIProvider(name, baseURL, apiKey, model string) *OpenAIProvider {
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &OpenAIProvider{
		client:  client,
		name:    name,
		model:   model,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// RunQuery implements model.Provider with a single non-streaming completion in
// JSON object mode.
func (p *OpenAIProvider) RunQuery(ctx context.Context, messages []model.Message) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%s: %w", p.name, ErrMissingAPIKey)
	}

	params := openai.ChatCompletionNewParams{
		Messages: ConvertToOpenAIMessages(messages),
		Model:    openai.ChatModel(p.model),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%s request failed: %w", p.name, err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New(p.name + " returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// Name implements model.Provider.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// GetModel implements model.Provider.
func (p *OpenAIProvider) GetModel() string {
	return p.model
}
