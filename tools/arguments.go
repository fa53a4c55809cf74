package tools

import (
	"github.com/spf13/cast"
)

// Arguments is a tool's bound, named input.
type Arguments map[string]any

func (a Arguments) Has(name string) bool {
	v, ok := a[name]
	return ok && v != nil
}

// String returns the named argument as text, or "" when absent.
func (a Arguments) String(name string) string {
	return cast.ToString(a[name])
}

// Int returns the named argument as an int, or def when absent or not numeric.
func (a Arguments) Int(name string, def int) int {
	if !a.Has(name) {
		return def
	}
	n, err := cast.ToIntE(a[name])
	if err != nil {
		return def
	}
	return n
}

// Float returns the named argument as a float64, or def when absent or not numeric.
func (a Arguments) Float(name string, def float64) float64 {
	if !a.Has(name) {
		return def
	}
	f, err := cast.ToFloat64E(a[name])
	if err != nil {
		return def
	}
	return f
}

// coerce converts loosely typed model input to the declared parameter types in
// place, e.g. "20" for an integer. Values that do not convert are left alone so
// schema validation reports them.
func coerce(params []Param, args Arguments) {
	for _, p := range params {
		v, ok := args[p.Name]
		if !ok || v == nil {
			continue
		}
		var (
			out any
			err error
		)
		switch p.Type {
		case TypeString:
			switch v.(type) {
			case map[string]any, []any:
				continue
			}
			out, err = cast.ToStringE(v)
		case TypeInteger:
			out, err = cast.ToIntE(v)
		case TypeNumber:
			out, err = cast.ToFloat64E(v)
		case TypeBoolean:
			out, err = cast.ToBoolE(v)
		default:
			continue
		}
		if err == nil {
			args[p.Name] = out
		}
	}
}
