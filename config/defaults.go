package config

import "time"

const (
	DefaultOutputDir       = "output"
	DefaultMaxParseRetries = 5
	DefaultParseRetryDelay = 200 * time.Millisecond
	DefaultCommandTimeout  = 10 * time.Second
)

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		OutputDir:             DefaultOutputDir,
		MaxParseRetries:       DefaultMaxParseRetries,
		ParseRetryDelayMs:     int(DefaultParseRetryDelay / time.Millisecond),
		CommandTimeoutSeconds: int(DefaultCommandTimeout / time.Second),
	}
}

func GenerateUserConfigTemplate() string {
	return `# projgen configuration
# Location: ~/.config/projgen/settings.toml
# This file uses TOML format: https://toml.io

# LLM provider: gemini, groq, openai, openrouter, anthropic or ollama.
# Leave empty to pick one from a menu at startup.
provider = ""

# Model name (empty = provider default)
model = ""

# Override the provider API base URL (empty = provider default)
base_url = ""

# Directory (relative to where projgen runs) that generated projects are written to
output_dir = "output"

# Optional file replacing the built-in system prompt
# system_prompt_file = "~/prompts/projgen.txt"

# How many times a malformed (non-JSON) model reply is retried before giving up
max_parse_retries = 5

# Pause between those retries, in milliseconds
parse_retry_delay_ms = 200

# Default timeout for run_command, in seconds
command_timeout_seconds = 10

# Copy the final summary to the system clipboard
copy_result_to_clipboard = false

# API keys are read from GEMINI_API_KEY, GROQ_API_KEY, OPENAI_API_KEY,
# OPENROUTER_API_KEY or ANTHROPIC_API_KEY (a .env file in the working directory
# is loaded at startup), or from credentials.toml next to this file.
`
}
