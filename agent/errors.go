package agent

import "errors"

var (
	// ErrParse means an LLM reply was not a usable JSON step object.
	ErrParse = errors.New("LLM response was not valid JSON")
	// ErrGiveUp means the parse retry budget for one turn ran out. It wraps the last
	// ErrParse.
	ErrGiveUp = errors.New("gave up after repeated invalid responses")
)

// LLMQueryError wraps a transport or authentication failure from the provider.
// It ends the request.
type LLMQueryError struct {
	Err error
}

func (e *LLMQueryError) Error() string {
	return "Error with LLM query: " + e.Err.Error()
}

func (e *LLMQueryError) Unwrap() error {
	return e.Err
}
