package model

import (
	"encoding/json"
	"fmt"
)

// ToolStatus is the normalized outcome of a tool invocation.
type ToolStatus string

const (
	StatusSuccess ToolStatus = "success"
	StatusError   ToolStatus = "error"
	StatusPartial ToolStatus = "partial"
)

// ToolResult is what every tool returns. Message is either text or a structured
// payload such as a list of directory names.
type ToolResult struct {
	Status  ToolStatus `json:"status"`
	Message any        `json:"message"`
}

// Success builds a successful result.
func Success(message any) ToolResult {
	return ToolResult{Status: StatusSuccess, Message: message}
}

// Successf builds a successful result from a format string.
func Successf(format string, args ...any) ToolResult {
	return Success(fmt.Sprintf(format, args...))
}

// Partial builds a partially successful result.
func Partial(message any) ToolResult {
	return ToolResult{Status: StatusPartial, Message: message}
}

// Failure builds an error result.
func Failure(message string) ToolResult {
	return ToolResult{Status: StatusError, Message: message}
}

// Failuref builds an error result from a format string.
func Failuref(format string, args ...any) ToolResult {
	return Failure(fmt.Sprintf(format, args...))
}

// Valid reports whether Status is one of the known values.
func (r ToolResult) Valid() bool {
	switch r.Status {
	case StatusSuccess, StatusError, StatusPartial:
		return true
	}
	return false
}

// Text returns the message as display text.
func (r ToolResult) Text() string {
	switch m := r.Message.(type) {
	case nil:
		return ""
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	}

	data, err := json.Marshal(r.Message)
	if err != nil {
		return fmt.Sprint(r.Message)
	}
	return string(data)
}

// Observation is an observe record synthesized by the agent loop (tool outcomes,
// unknown tools, unknown steps). It serializes like a model observe step so the
// model reads it in the same format, but it is never decoded back into a Step.
type Observation struct {
	Result ToolResult
}

// Serialized returns {"step":"observe","content":{"status":...,"message":...}}.
func (o Observation) Serialized() string {
	payload := struct {
		Step    StepKind   `json:"step"`
		Content ToolResult `json:"content"`
	}{
		Step:    KindObserve,
		Content: o.Result,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		// Message held something json cannot encode; fall back to its text form.
		payload.Content.Message = o.Result.Text()
		data, _ = json.Marshal(payload)
	}
	return string(data)
}
