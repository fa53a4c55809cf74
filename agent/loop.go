// Package agent runs the plan, act, observe, output, final loop for a single user
// request.
package agent

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"projgen/config"
	"projgen/model"
	"projgen/tools"
)

const (
	defaultMaxParseRetries = 5
	defaultParseRetryDelay = 200 * time.Millisecond
)

// summaryRequest is sent as a user message after every output step.
const summaryRequest = "Provide a summary of what you've created including the project structure, files, and key features."

// Loop drives one request at a time. It is not safe for concurrent use: tools may
// change the process working directory, which Run restores on return.
type Loop struct {
	Client   model.Provider
	Registry *tools.Registry
	Reporter Reporter
	Input    InputReader

	// OutputDir is created before the first query when non-empty.
	OutputDir string
	// MaxParseRetries bounds re-queries after an unparsable reply. Zero means 5.
	MaxParseRetries int
	// ParseRetryDelay is the pause between those re-queries. Zero means 200ms.
	ParseRetryDelay time.Duration
}

// Run processes one request and returns the content of the final step.
//
// The loop ends only on a final step, an LLM query error, an exhausted parse
// retry budget (ErrGiveUp) or context cancellation. The working directory is the
// same on return as on entry, including when a panic unwinds through Run.
func (l *Loop) Run(ctx context.Context, systemPrompt, query string) (string, error) {
	return l.RunConversation(ctx, NewConversation(systemPrompt, query))
}

// RunConversation is Run over a caller-owned conversation, which is left holding
// the full history when it returns.
func (l *Loop) RunConversation(ctx context.Context, conv *Conversation) (result string, err error) {
	if l.OutputDir != "" {
		if err := os.MkdirAll(l.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	origWD, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	defer func() {
		if cerr := os.Chdir(origWD); cerr != nil && err == nil {
			err = fmt.Errorf("restore working directory: %w", cerr)
		}
	}()

	log := config.DebugLog.With().Str("request_id", uuid.NewString()).Logger()
	if config.Debug {
		log.Debug().Str("provider", l.Client.Name()).Str("model", l.Client.GetModel()).Msg("request started")
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		step, err := l.nextStep(ctx, conv, log)
		if err != nil {
			if config.Debug {
				log.Debug().Err(err).Int("messages", conv.Len()).Msg("request failed")
			}
			return "", err
		}

		conv.Append(model.RoleAssistant, step.Serialized())
		if config.Debug {
			log.Debug().Str("step", string(step.Kind())).Str("raw", step.Serialized()).Msg("step")
		}

		switch s := step.(type) {
		case model.PlanStep:
			l.reporter().Plan(s.Content)

		case model.InputStep:
			answer, err := l.input().ReadLine(s.Content)
			if err != nil {
				return "", fmt.Errorf("read input: %w", err)
			}
			conv.Append(model.RoleUser, answer)

		case model.ActionStep:
			l.reporter().Action(s.Function, s.Input)
			conv.Observe(l.dispatch(ctx, s, log))

		case model.OutputStep:
			l.reporter().Output(s.Content)
			conv.Append(model.RoleUser, summaryRequest)

		case model.ObserveStep:
			l.reporter().Observation(s.Content)

		case model.FinalStep:
			l.reporter().Final(s.Content)
			return s.Content, nil

		case model.UnknownStep:
			msg := "Unknown step: " + s.Tag
			l.reporter().Error(msg)
			conv.Observe(model.Failure(msg))
		}
	}
}

// nextStep queries the model until it returns a parsable step. Parse failures are
// retried with the same history; nothing is appended for them.
func (l *Loop) nextStep(ctx context.Context, conv *Conversation, log zerolog.Logger) (model.Step, error) {
	var step model.Step

	backoff := retry.WithMaxRetries(uint64(l.maxParseRetries()), retry.NewConstant(l.parseRetryDelay()))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		raw, err := l.Client.RunQuery(ctx, conv.Messages())
		if err != nil {
			return &LLMQueryError{Err: err}
		}

		s, ambiguous, err := ParseStep(raw)
		if err != nil {
			if config.Debug {
				log.Debug().Err(err).Str("reply", raw).Msg("unparsable reply")
			}
			l.reporter().Error("LLM response was not valid JSON. Retrying...")
			return retry.RetryableError(err)
		}
		if ambiguous {
			l.reporter().Warning("Received a list instead of a dict. Using the first object in it.")
		}
		step = s
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrParse) {
			return nil, fmt.Errorf("%w: %w", ErrGiveUp, err)
		}
		return nil, err
	}
	return step, nil
}

// dispatch runs the tool an action step names. Every outcome, including an
// unknown tool, a binding error or a panic, becomes a ToolResult.
func (l *Loop) dispatch(ctx context.Context, s model.ActionStep, log zerolog.Logger) (result model.ToolResult) {
	spec, ok := l.registry().Lookup(s.Function)
	if !ok {
		msg := "Unknown tool: " + s.Function
		l.reporter().Error(msg)
		return model.Failure(msg)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = model.Failuref("Tool error: %v", r)
			l.reporter().ToolResult(result)
		}
		if config.Debug {
			log.Debug().
				Str("tool", s.Function).
				Str("status", string(result.Status)).
				Dur("elapsed", time.Since(start)).
				Msg("tool call")
		}
	}()

	var err error
	result, err = spec.Call(ctx, normalizeContent(s.Input))
	switch {
	case err != nil:
		result = model.Failure(err.Error())
	case !result.Valid():
		result = model.Failuref("Tool returned an invalid status %q", result.Status)
	}

	l.reporter().ToolResult(result)
	return result
}

func (l *Loop) registry() *tools.Registry {
	if l.Registry == nil {
		return tools.NewRegistry()
	}
	return l.Registry
}

func (l *Loop) reporter() Reporter {
	if l.Reporter == nil {
		return discardReporter{}
	}
	return l.Reporter
}

func (l *Loop) input() InputReader {
	if l.Input == nil {
		return noInput{}
	}
	return l.Input
}

func (l *Loop) maxParseRetries() int {
	if l.MaxParseRetries <= 0 {
		return defaultMaxParseRetries
	}
	return l.MaxParseRetries
}

func (l *Loop) parseRetryDelay() time.Duration {
	if l.ParseRetryDelay <= 0 {
		return defaultParseRetryDelay
	}
	return l.ParseRetryDelay
}
