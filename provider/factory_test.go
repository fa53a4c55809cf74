package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/config"
	"projgen/model"
	"projgen/ollama"
	"projgen/provider/testutil"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		wantName    string
		wantModel   string
	}{
		{
			name:      "gemini with defaults",
			config:    Config{Type: ProviderTypeGemini, APIKey: "k"},
			wantName:  "gemini",
			wantModel: "gemini-2.0-flash",
		},
		{
			name:      "groq with defaults",
			config:    Config{Type: ProviderTypeGroq, APIKey: "k"},
			wantName:  "groq",
			wantModel: "llama-3.3-70b-versatile",
		},
		{
			name:      "openai with custom model",
			config:    Config{Type: ProviderTypeOpenAI, Model: "gpt-4.1", APIKey: "k"},
			wantName:  "openai",
			wantModel: "gpt-4.1",
		},
		{
			name:      "openrouter",
			config:    Config{Type: ProviderTypeOpenRouter, APIKey: "k"},
			wantName:  "openrouter",
			wantModel: DefaultModel(ProviderTypeOpenRouter),
		},
		{
			name:      "anthropic",
			config:    Config{Type: ProviderTypeAnthropic, APIKey: "k"},
			wantName:  "anthropic",
			wantModel: "claude-sonnet-4-5-20250929",
		},
		{
			name:      "ollama with defaults",
			config:    Config{Type: ProviderTypeOllama},
			wantName:  "ollama",
			wantModel: "llama3.1:latest",
		},
		{
			name:        "unknown provider type",
			config:      Config{Type: ProviderType("unknown")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, p)
				assert.Contains(t, err.Error(), "unsupported LLM choice")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantModel, p.GetModel())
		})
	}
}

func TestNewProviderMissingKeyFailsOnFirstQuery(t *testing.T) {
	for _, pt := range []ProviderType{ProviderTypeGemini, ProviderTypeGroq, ProviderTypeAnthropic} {
		t.Run(string(pt), func(t *testing.T) {
			p, err := NewProvider(Config{Type: pt})
			require.NoError(t, err)

			_, err = p.RunQuery(context.Background(), testutil.SingleUserMessage("hi"))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingAPIKey))
		})
	}
}

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id   string
		want ProviderType
	}{
		{"gemini", ProviderTypeGemini},
		{"Groq", ProviderTypeGroq},
		{" openai ", ProviderTypeOpenAI},
		{"openrouter", ProviderTypeOpenRouter},
		{"anthropic", ProviderTypeAnthropic},
		{"ollama", ProviderTypeOllama},
		{"custom", ProviderType("custom")},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, MapProviderIDToType(tt.id))
		})
	}
}

func TestSupportedProvidersHaveDefaults(t *testing.T) {
	opts := SupportedProviders()
	require.NotEmpty(t, opts)
	assert.Equal(t, ProviderTypeGemini, opts[0].Type)
	assert.Equal(t, ProviderTypeGroq, opts[1].Type)
	for _, opt := range opts {
		assert.NotEmpty(t, DefaultBaseURL(opt.Type), opt.Type)
		assert.NotEmpty(t, DefaultModel(opt.Type), opt.Type)
		assert.NotEmpty(t, opt.Label)
	}
}

func TestInitializeProvider(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "env-key")

	store := config.NewCredentialStore()
	cfg := &config.Config{
		Provider:        "groq",
		Model:           "custom-model",
		CredentialStore: store,
	}

	p, err := InitializeProvider(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "groq", p.Name())
	assert.Equal(t, "custom-model", p.GetModel())

	// A menu choice different from settings uses that provider's defaults.
	p, err = InitializeProvider(cfg, ProviderTypeGemini)
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())
	assert.Equal(t, DefaultModel(ProviderTypeGemini), p.GetModel())

	_, err = InitializeProvider(&config.Config{}, "")
	assert.Error(t, err)
}

func TestNewOllamaProviderDefaults(t *testing.T) {
	p, err := NewOllamaProvider("", "")
	require.NoError(t, err)
	assert.Equal(t, ollama.DefaultHost, p.client.BaseURL())
	assert.Equal(t, ollama.DefaultModel, p.GetModel())

	p, err = NewOllamaProvider("http://gpu-box:11434", "qwen2.5-coder")
	require.NoError(t, err)
	assert.Equal(t, "http://gpu-box:11434", p.client.BaseURL())
}

func TestProvidersImplementInterface(t *testing.T) {
	var _ model.Provider = (*OpenAIProvider)(nil)
	var _ model.Provider = (*AnthropicProvider)(nil)
	var _ model.Provider = (*OllamaProvider)(nil)
	var _ model.Provider = (*testutil.MockProvider)(nil)
}
