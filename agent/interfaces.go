package agent

import (
	"errors"

	"projgen/model"
)

// Reporter receives user-visible progress from the loop. ui.Printer is the
// terminal implementation.
type Reporter interface {
	Plan(content string)
	Action(function string, input model.Args)
	ToolResult(result model.ToolResult)
	Output(content string)
	Observation(content string)
	Final(content string)
	Warning(msg string)
	Error(msg string)
}

// InputReader answers "input" steps.
type InputReader interface {
	ReadLine(prompt string) (string, error)
}

// ErrNoInput is returned by the default InputReader.
var ErrNoInput = errors.New("no input reader configured")

type discardReporter struct{}

func (discardReporter) Plan(string) {}
func (discardReporter) Action(string, model.Args) {}
func (discardReporter) ToolResult(model.ToolResult) {}
func (discardReporter) Output(string) {}
func (discardReporter) Observation(string) {}
func (discardReporter) Final(string) {}
func (discardReporter) Warning(string) {}
func (discardReporter) Error(string) {}

type noInput struct{}

func (noInput) ReadLine(string) (string, error) { return "", ErrNoInput }
