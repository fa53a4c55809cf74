package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"projgen/model"
)

// jsonOnlyInstruction is appended to the system blocks because the Messages API has
// no JSON response mode.
const jsonOnlyInstruction = "Reply with exactly one JSON object and nothing else: no prose, no Markdown fences."

// continueNudge keeps the conversation ending on a user turn; a trailing assistant
// turn would be treated as a prefill to continue.
const continueNudge = "Continue with the next step."

// AnthropicProvider implements model.Provider using Anthropic's official API.
type AnthropicProvider struct {
	client  *anthropic.Client
	model   anthropic.Model
	baseURL string
	apiKey  string
}

// NewAnthropicProvider creates a new Anthropic provider instance.
//
// Parameters:
//   - baseURL: Anthropic API base URL (e.g. "https://api.anthropic.com")
//   - apiKey: Anthropic API key; may be empty (RunQuery then fails with ErrMissingAPIKey)
//   - model: model name (e.g. "claude-sonnet-4-5-20250929")
func NewAnthropicProvider(baseURL, apiKey, model string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &AnthropicProvider{
		client:  &client,
		model:   anthropic.Model(model),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// RunQuery implements model.Provider.
func (p *AnthropicProvider) RunQuery(ctx context.Context, messages []model.Message) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}

	anthropicMessages, systemPrompt := convertToAnthropicMessages(messages)
	systemPrompt = append(systemPrompt, anthropic.TextBlockParam{Text: jsonOnlyInstruction})

	params := anthropic.MessageNewParams{
		Model:     p.model,
		Messages:  anthropicMessages,
		System:    systemPrompt,
		MaxTokens: 8192,
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), nil
}

// Name implements model.Provider.
func (p *AnthropicProvider) Name() string {
	return string(ProviderTypeAnthropic)
}

// GetModel implements model.Provider.
func (p *AnthropicProvider) GetModel() string {
	return string(p.model)
}

// convertToAnthropicMessages converts conversation messages to Anthropic format.
// Returns the message array and any system prompt found.
func convertToAnthropicMessages(messages []model.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var systemBlocks []anthropic.TextBlockParam
	anthropicMsgs := make([]anthropic.MessageParam, 0, len(messages)+1)

	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			// Anthropic uses a separate system parameter, not in messages array
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{
				Text: msg.Content,
			})

		case model.RoleAssistant:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)),
			)

		default:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)
		}
	}

	if n := len(messages); n > 0 && messages[n-1].Role == model.RoleAssistant {
		anthropicMsgs = append(anthropicMsgs,
			anthropic.NewUserMessage(anthropic.NewTextBlock(continueNudge)),
		)
	}

	return anthropicMsgs, systemBlocks
}
