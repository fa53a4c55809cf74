package agent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"projgen/config"
	"projgen/tools"
)

//go:embed prompts/system_prompt.txt
var defaultSystemPrompt string

// LoadSystemPrompt returns the system prompt with line breaks removed and the
// registry's tool catalog appended. An empty path uses the built-in prompt.
func LoadSystemPrompt(path string, registry *tools.Registry) (string, error) {
	text := defaultSystemPrompt
	if path != "" {
		data, err := os.ReadFile(config.ExpandPath(path))
		if err != nil {
			return "", fmt.Errorf("read system prompt: %w", err)
		}
		text = string(data)
	}

	prompt := flattenLines(text)
	if registry == nil || registry.Len() == 0 {
		return prompt, nil
	}

	catalog, err := registry.CatalogJSON()
	if err != nil {
		return "", err
	}
	return prompt + " Available tools: " + catalog, nil
}

// flattenLines joins non-empty lines with single spaces.
func flattenLines(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
