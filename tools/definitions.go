package tools

import (
	"encoding/json"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Definition converts a ToolSpec to the MCP tool shape used in the prompt catalog.
//
// MCP Tool structure:
//
//	{
//	  "name": "create_directory_in_output",
//	  "description": "Creates a directory in the output folder ...",
//	  "inputSchema": {
//	    "type": "object",
//	    "properties": {...},
//	    "required": [...]
//	  }
//	}
func (s *ToolSpec) Definition() mcptypes.Tool {
	doc := schemaDocument(s.Params)

	schema := mcptypes.ToolInputSchema{
		Type:       "object",
		Properties: doc["properties"].(map[string]any),
	}
	if required, ok := doc["required"].([]string); ok {
		schema.Required = required
	}

	return mcptypes.Tool{
		Name:        s.Name,
		Description: s.Description,
		InputSchema: schema,
	}
}

// Definitions returns every registered tool in registration order.
func (r *Registry) Definitions() []mcptypes.Tool {
	defs := make([]mcptypes.Tool, 0, len(r.order))
	for _, spec := range r.List() {
		defs = append(defs, spec.Definition())
	}
	return defs
}

// CatalogJSON renders the tool definitions as compact JSON for the system prompt.
func (r *Registry) CatalogJSON() (string, error) {
	data, err := json.Marshal(r.Definitions())
	if err != nil {
		return "", fmt.Errorf("marshal tool catalog: %w", err)
	}
	return string(data), nil
}
