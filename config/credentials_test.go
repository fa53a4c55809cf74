package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"gemini", "GEMINI_API_KEY"},
		{"Groq", "GROQ_API_KEY"},
		{"anthropic", "ANTHROPIC_API_KEY"},
		{"ollama", ""},
		{"unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			assert.Equal(t, tt.want, APIKeyEnvVar(tt.provider))
		})
	}
}

func TestCredentialStoreEnvWinsOverFile(t *testing.T) {
	clearProjgenEnv(t)
	path := filepath.Join(t.TempDir(), "credentials.toml")
	content := `
[credentials]
groq = "file-groq"
gemini = "file-gemini"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store := NewCredentialStore()
	require.NoError(t, store.Load(path))

	t.Setenv("GROQ_API_KEY", "env-groq")

	assert.Equal(t, "env-groq", store.Get("groq"))
	assert.Equal(t, "file-gemini", store.Get("gemini"))
	assert.Equal(t, "", store.Get("openai"))
}

func TestCredentialStoreMissingFile(t *testing.T) {
	store := NewCredentialStore()
	assert.NoError(t, store.Load(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestConfigAPIKey(t *testing.T) {
	clearProjgenEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := &Config{Provider: "gemini"}
	assert.Equal(t, "g-key", cfg.APIKey())

	cfg.CredentialStore = NewCredentialStore()
	cfg.Provider = "openai"
	cfg.CredentialStore.Set("openai", "o-key")
	assert.Equal(t, "o-key", cfg.APIKey())
}
