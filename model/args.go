package model

import "encoding/json"

// Args is the argument payload of an action step. The interpreter resolves the raw
// "input" field into exactly one of KeyedArgs, PositionalArgs, ScalarArgs or NoArgs,
// so tools never inspect the runtime shape of the payload themselves.
type Args interface {
	argShape()
}

// KeyedArgs are keyword arguments (a JSON object).
type KeyedArgs map[string]any

// PositionalArgs are positional arguments (a JSON array).
type PositionalArgs []any

// ScalarArgs is a single argument (a JSON string, number or boolean).
type ScalarArgs struct {
	Value any
}

// NoArgs means the input field was absent or null.
type NoArgs struct{}

func (KeyedArgs) argShape()      {}
func (PositionalArgs) argShape() {}
func (ScalarArgs) argShape()     {}
func (NoArgs) argShape()         {}

// FormatArgs renders args as compact JSON for display.
func FormatArgs(args Args) string {
	var v any
	switch a := args.(type) {
	case KeyedArgs:
		v = map[string]any(a)
	case PositionalArgs:
		v = []any(a)
	case ScalarArgs:
		v = a.Value
	default:
		return "none"
	}

	data, err := json.Marshal(v)
	if err != nil {
		return "unprintable"
	}
	return string(data)
}
