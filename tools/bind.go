package tools

import (
	"fmt"
	"maps"

	"projgen/model"
)

// Bind maps action input of any shape onto named parameters.
//
//   - KeyedArgs: copied; keys that name no parameter are rejected
//   - PositionalArgs: bound by index; more values than parameters is rejected
//   - ScalarArgs: bound to the first parameter
//   - NoArgs (or nil): an empty argument set
func Bind(params []Param, args model.Args) (Arguments, error) {
	out := Arguments{}

	switch a := args.(type) {
	case nil, model.NoArgs:
		return out, nil

	case model.KeyedArgs:
		known := make(map[string]bool, len(params))
		for _, p := range params {
			known[p.Name] = true
		}
		for k := range a {
			if !known[k] {
				return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, k)
			}
		}
		maps.Copy(out, a)
		return out, nil

	case model.PositionalArgs:
		if len(a) > len(params) {
			return nil, fmt.Errorf("%w: got %d positional arguments, tool takes %d", ErrInvalidArgs, len(a), len(params))
		}
		for i, v := range a {
			out[params[i].Name] = v
		}
		return out, nil

	case model.ScalarArgs:
		if len(params) == 0 {
			return nil, fmt.Errorf("%w: tool takes no arguments", ErrInvalidArgs)
		}
		out[params[0].Name] = a.Value
		return out, nil

	default:
		return nil, fmt.Errorf("%w: unsupported input shape %T", ErrInvalidArgs, args)
	}
}
