package model

// StepKind is the tag carried in the "step" field of a model response.
type StepKind string

const (
	KindPlan    StepKind = "plan"
	KindInput   StepKind = "input"
	KindAction  StepKind = "action"
	KindOutput  StepKind = "output"
	KindObserve StepKind = "observe"
	KindFinal   StepKind = "final"
	KindUnknown StepKind = "unknown"
)

// Step is one structured directive decoded from an LLM response.
//
// The set of variants is closed: every concrete step embeds Envelope, which is the
// only type providing the unexported marker method. The agent loop dispatches with
// a type switch over the variants below.
type Step interface {
	Kind() StepKind
	// Serialized returns the compact JSON object the step was decoded from. It is
	// what gets appended to the conversation as the assistant message.
	Serialized() string
	step()
}

// Envelope holds the JSON source of a decoded step.
type Envelope struct {
	Source string
}

func (e Envelope) Serialized() string { return e.Source }

func (Envelope) step() {}

// PlanStep surfaces the model's plan to the user.
type PlanStep struct {
	Envelope
	Content string
}

func (PlanStep) Kind() StepKind { return KindPlan }

// InputStep asks the user a question; Content is the prompt.
type InputStep struct {
	Envelope
	Content string
}

func (InputStep) Kind() StepKind { return KindInput }

// ActionStep requests a tool invocation.
type ActionStep struct {
	Envelope
	Content  string
	Function string
	Input    Args
}

func (ActionStep) Kind() StepKind { return KindAction }

// OutputStep reports produced output.
type OutputStep struct {
	Envelope
	Content string
}

func (OutputStep) Kind() StepKind { return KindOutput }

// ObserveStep is an observation emitted by the model itself. Observations the loop
// synthesizes are Observation values, not steps.
type ObserveStep struct {
	Envelope
	Content string
}

func (ObserveStep) Kind() StepKind { return KindObserve }

// FinalStep ends the request; Content is the result.
type FinalStep struct {
	Envelope
	Content string
}

func (FinalStep) Kind() StepKind { return KindFinal }

// UnknownStep carries a missing or unrecognized tag. Tag is the raw value (may be empty).
type UnknownStep struct {
	Envelope
	Tag     string
	Content string
}

func (UnknownStep) Kind() StepKind { return KindUnknown }
