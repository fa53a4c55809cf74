package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// apiKeyEnvVars maps provider IDs to the environment variable holding their key.
var apiKeyEnvVars = map[string]string{
	"gemini":     "GEMINI_API_KEY",
	"groq":       "GROQ_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
}

// APIKeyEnvVar returns the environment variable for a provider's API key.
// Providers without a key (ollama) return "".
func APIKeyEnvVar(providerID string) string {
	return apiKeyEnvVars[strings.ToLower(providerID)]
}

// CredentialStore resolves provider API keys. The environment always wins over
// the plaintext credentials file so a .env or exported variable can override it.
type CredentialStore struct {
	credentials map[string]string // providerID → API key
}

// NewCredentialStore creates an empty credential store
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: make(map[string]string),
	}
}

// Load reads credentials.toml at path. A missing file is not an error.
func (c *CredentialStore) Load(path string) error {
	if !FileExists(path) {
		return nil
	}

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	var cf credentialsFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return fmt.Errorf("failed to parse credentials file: %w", err)
	}

	for id, key := range cf.Credentials {
		c.credentials[strings.ToLower(id)] = key
	}
	return nil
}

// Get retrieves a credential for a provider: environment first, then file.
// An empty result is not an error here; providers report it on first use.
func (c *CredentialStore) Get(providerID string) string {
	providerID = strings.ToLower(providerID)
	if envVar := APIKeyEnvVar(providerID); envVar != "" {
		if key := os.Getenv(envVar); key != "" {
			return key
		}
	}
	return c.credentials[providerID]
}

// Set stores a credential for a provider
func (c *CredentialStore) Set(providerID string, apiKey string) {
	c.credentials[strings.ToLower(providerID)] = apiKey
}

// credentialsPath returns credentials.toml next to the settings file
func credentialsPath(settingsPath string) string {
	return filepath.Join(filepath.Dir(settingsPath), "credentials.toml")
}
