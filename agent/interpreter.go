package agent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"projgen/model"
)

// ParseStep decodes one LLM reply into a Step.
//
// A JSON array is accepted when any of its elements is an object; the first such
// element is used and ambiguous is true. Anything else that is not a JSON object fails with
// ErrParse. A missing or unrecognized "step" tag yields an UnknownStep rather than
// an error. Markdown code fences around the reply are ignored.
func ParseStep(raw string) (step model.Step, ambiguous bool, err error) {
	text := trimFences(raw)

	var top json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrParse, err)
	}

	obj := bytes.TrimSpace(top)
	switch {
	case len(obj) > 0 && obj[0] == '[':
		var items []json.RawMessage
		if err := json.Unmarshal(obj, &items); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrParse, err)
		}
		first := -1
		for i, item := range items {
			if isObject(item) {
				first = i
				break
			}
		}
		if first < 0 {
			return nil, false, fmt.Errorf("%w: list holds no object", ErrParse)
		}
		obj = bytes.TrimSpace(items[first])
		ambiguous = true
	case !isObject(obj):
		return nil, false, fmt.Errorf("%w: expected a JSON object", ErrParse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj, &fields); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, obj); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrParse, err)
	}
	env := model.Envelope{Source: compact.String()}
	content := decodeText(fields["content"])

	tag, tagOK := decodeTag(fields["step"])
	if !tagOK {
		return model.UnknownStep{Envelope: env, Tag: tag, Content: content}, ambiguous, nil
	}

	switch model.StepKind(tag) {
	case model.KindPlan:
		return model.PlanStep{Envelope: env, Content: content}, ambiguous, nil
	case model.KindInput:
		return model.InputStep{Envelope: env, Content: content}, ambiguous, nil
	case model.KindAction:
		input, err := decodeArgs(fields["input"])
		if err != nil {
			return nil, false, fmt.Errorf("%w: input: %v", ErrParse, err)
		}
		return model.ActionStep{
			Envelope: env,
			Content:  content,
			Function: decodeText(fields["function"]),
			Input:    input,
		}, ambiguous, nil
	case model.KindOutput:
		return model.OutputStep{Envelope: env, Content: content}, ambiguous, nil
	case model.KindObserve:
		return model.ObserveStep{Envelope: env, Content: content}, ambiguous, nil
	case model.KindFinal:
		return model.FinalStep{Envelope: env, Content: content}, ambiguous, nil
	default:
		return model.UnknownStep{Envelope: env, Tag: tag, Content: content}, ambiguous, nil
	}
}

// trimFences strips a surrounding ``` or ```json fence.
func trimFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{[") {
		s = s[nl+1:]
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '{'
}

// decodeTag returns the step tag and whether it is a string. Non-string tags are
// returned as their JSON text.
func decodeTag(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return compactText(raw), false
	}
	return strings.ToLower(strings.TrimSpace(s)), true
}

// decodeText keeps JSON strings verbatim and renders any other value as compact
// JSON. Absent and null values are "".
func decodeText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return compactText(raw)
}

func compactText(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// decodeArgs resolves the "input" field into one Args variant. Numbers are kept as
// json.Number so tools can coerce them without float rounding.
func decodeArgs(raw json.RawMessage) (model.Args, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return model.NoArgs{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case map[string]any:
		return model.KeyedArgs(val), nil
	case []any:
		return model.PositionalArgs(val), nil
	default:
		return model.ScalarArgs{Value: val}, nil
	}
}
