package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type UserConfig struct {
	Provider              string `toml:"provider"`
	Model                 string `toml:"model"`
	BaseURL               string `toml:"base_url"`
	OutputDir             string `toml:"output_dir"`
	SystemPromptFile      string `toml:"system_prompt_file,omitempty"`
	MaxParseRetries       int    `toml:"max_parse_retries"`
	ParseRetryDelayMs     int    `toml:"parse_retry_delay_ms"`
	CommandTimeoutSeconds int    `toml:"command_timeout_seconds"`
	CopyResultToClipboard bool   `toml:"copy_result_to_clipboard"`
}

type Config struct {
	Provider              string
	Model                 string
	BaseURL               string
	OutputDir             string
	SystemPromptFile      string
	MaxParseRetries       int
	ParseRetryDelay       time.Duration
	CommandTimeout        time.Duration
	CopyResultToClipboard bool

	CredentialStore *CredentialStore
}

// APIKey returns the credential for the configured provider ("" when unset).
func (c *Config) APIKey() string {
	if c.CredentialStore == nil {
		return os.Getenv(APIKeyEnvVar(c.Provider))
	}
	return c.CredentialStore.Get(c.Provider)
}

func (c *Config) applyUserConfig(userCfg *UserConfig) {
	c.Provider = userCfg.Provider
	c.Model = userCfg.Model
	c.BaseURL = userCfg.BaseURL
	c.SystemPromptFile = userCfg.SystemPromptFile
	c.CopyResultToClipboard = userCfg.CopyResultToClipboard

	if userCfg.OutputDir != "" {
		c.OutputDir = userCfg.OutputDir
	}
	if userCfg.MaxParseRetries > 0 {
		c.MaxParseRetries = userCfg.MaxParseRetries
	}
	if userCfg.ParseRetryDelayMs > 0 {
		c.ParseRetryDelay = time.Duration(userCfg.ParseRetryDelayMs) * time.Millisecond
	}
	if userCfg.CommandTimeoutSeconds > 0 {
		c.CommandTimeout = time.Duration(userCfg.CommandTimeoutSeconds) * time.Second
	}
}

func (c *Config) applyEnvOverrides() {
	if provider := os.Getenv("PROJGEN_PROVIDER"); provider != "" {
		c.Provider = provider
	}
	if model := os.Getenv("PROJGEN_MODEL"); model != "" {
		c.Model = model
	}
	if outputDir := os.Getenv("PROJGEN_OUTPUT_DIR"); outputDir != "" {
		c.OutputDir = outputDir
	}
	if retries := os.Getenv("PROJGEN_MAX_PARSE_RETRIES"); retries != "" {
		if n, err := strconv.Atoi(retries); err == nil && n > 0 {
			c.MaxParseRetries = n
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		OutputDir:       DefaultOutputDir,
		MaxParseRetries: DefaultMaxParseRetries,
		ParseRetryDelay: DefaultParseRetryDelay,
		CommandTimeout:  DefaultCommandTimeout,
	}
}

// Load reads settings.toml from the config directory (creating it from the
// template on first run), applies environment overrides and loads credentials.
func Load() (*Config, error) {
	return LoadFrom(GetSettingsFilePath())
}

// LoadFrom is Load with an explicit settings path. Credentials are read from
// credentials.toml in the same directory.
func LoadFrom(settingsPath string) (*Config, error) {
	cfg := defaultConfig()

	userCfg, err := LoadUserConfig(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}
	cfg.applyUserConfig(userCfg)
	cfg.applyEnvOverrides()

	store := NewCredentialStore()
	if err := store.Load(credentialsPath(settingsPath)); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	cfg.CredentialStore = store

	return cfg, nil
}
