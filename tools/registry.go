// Package tools holds the named capabilities the model may invoke through an
// "action" step, and the registry the agent loop looks them up in.
package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"projgen/model"
)

var (
	// ErrDuplicateTool is returned when a tool name is registered twice or is empty.
	ErrDuplicateTool = errors.New("duplicate tool")
	// ErrInvalidArgs is returned when action input cannot be bound to a tool's parameters.
	ErrInvalidArgs = errors.New("invalid tool arguments")
)

// Param types understood by the registry. They double as JSON Schema types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Func is a tool implementation. A returned error is reported to the model as a
// status=error observation, the same as a Failure result.
type Func func(ctx context.Context, args Arguments) (model.ToolResult, error)

// Param declares one named tool parameter. Order matters: positional input is
// bound by index and scalar input goes to the first parameter.
type Param struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// ToolSpec is a registered tool.
type ToolSpec struct {
	Name        string
	Description string
	Params      []Param
	Fn          Func

	schema *gojsonschema.Schema
}

// Registry maps tool names to specs. It is filled once at startup and only read
// afterwards, so it carries no lock.
type Registry struct {
	tools map[string]*ToolSpec
	order []string
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*ToolSpec)}
}

// Register adds a tool and compiles its argument schema.
func (r *Registry) Register(spec ToolSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("%w: empty name", ErrDuplicateTool)
	}
	if _, exists := r.tools[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, spec.Name)
	}
	if spec.Fn == nil {
		return fmt.Errorf("tool %s has no implementation", spec.Name)
	}

	schema, err := compileSchema(spec.Params)
	if err != nil {
		return fmt.Errorf("tool %s: %w", spec.Name, err)
	}
	spec.schema = schema

	r.tools[spec.Name] = &spec
	r.order = append(r.order, spec.Name)
	return nil
}

// MustRegister is Register for built-in tool tables; it panics on error.
func (r *Registry) MustRegister(specs ...ToolSpec) {
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Lookup(name string) (*ToolSpec, bool) {
	spec, ok := r.tools[name]
	return spec, ok
}

// List returns the registered tools in registration order.
func (r *Registry) List() []*ToolSpec {
	out := make([]*ToolSpec, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

// Call binds args to the tool's parameters, validates them and runs the tool.
// Binding and validation failures wrap ErrInvalidArgs.
func (s *ToolSpec) Call(ctx context.Context, args model.Args) (model.ToolResult, error) {
	bound, err := Bind(s.Params, args)
	if err != nil {
		return model.ToolResult{}, err
	}
	coerce(s.Params, bound)
	if err := validate(s.schema, bound); err != nil {
		return model.ToolResult{}, err
	}
	return s.Fn(ctx, bound)
}
