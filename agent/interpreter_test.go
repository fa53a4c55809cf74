package agent

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/model"
)

func TestParseStepVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.StepKind
	}{
		{"plan", `{"step":"plan","content":"x"}`, model.KindPlan},
		{"input", `{"step":"input","content":"name?"}`, model.KindInput},
		{"action", `{"step":"action","function":"f","input":{"a":1}}`, model.KindAction},
		{"output", `{"step":"output","content":"done"}`, model.KindOutput},
		{"observe", `{"step":"observe","content":{"status":"success"}}`, model.KindObserve},
		{"final", `{"step":"final","content":"bye"}`, model.KindFinal},
		{"tag case and spaces", `{"step":" Final ","content":"bye"}`, model.KindFinal},
		{"unrecognized tag", `{"step":"dance"}`, model.KindUnknown},
		{"missing tag", `{"content":"x"}`, model.KindUnknown},
		{"non-string tag", `{"step":3}`, model.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, ambiguous, err := ParseStep(tt.raw)
			require.NoError(t, err)
			assert.False(t, ambiguous)
			assert.Equal(t, tt.want, step.Kind())
		})
	}
}

func TestParseStepPlanContentRoundTrip(t *testing.T) {
	content := "Create \"app\" with\nindex.html → ünïcode"
	raw, err := json.Marshal(map[string]string{"step": "plan", "content": content})
	require.NoError(t, err)

	step, _, err := ParseStep(string(raw))
	require.NoError(t, err)
	plan, ok := step.(model.PlanStep)
	require.True(t, ok)
	assert.Equal(t, content, plan.Content)

	// The serialized form decodes to the same step.
	again, _, err := ParseStep(plan.Serialized())
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}

func TestParseStepList(t *testing.T) {
	step, ambiguous, err := ParseStep(`[{"step":"final","content":"first"},{"step":"plan","content":"second"}]`)
	require.NoError(t, err)
	assert.True(t, ambiguous)
	final, ok := step.(model.FinalStep)
	require.True(t, ok)
	assert.Equal(t, "first", final.Content)
	assert.Equal(t, `{"step":"final","content":"first"}`, final.Serialized())

	tests := []struct {
		raw     string
		kind    model.StepKind
		content string
	}{
		{`["note", {"step":"final","content":"y"}]`, model.KindFinal, "y"},
		{`[null, {"step":"plan","content":"x"}, {"step":"final","content":"y"}]`, model.KindPlan, "x"},
		{`[1, "two", {"content":"z"}]`, model.KindUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			step, ambiguous, err := ParseStep(tt.raw)
			require.NoError(t, err)
			assert.True(t, ambiguous)
			assert.Equal(t, tt.kind, step.Kind())
			if tt.content != "" {
				assert.Contains(t, step.Serialized(), `"content":"`+tt.content+`"`)
			}
		})
	}
}

func TestParseStepErrors(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json",
		`{"step":"plan"`,
		`"just a string"`,
		`42`,
		`[]`,
		`["plan"]`,
		`["plan", 3, null]`,
		`null`,
	} {
		t.Run(raw, func(t *testing.T) {
			_, _, err := ParseStep(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestParseStepContentShapes(t *testing.T) {
	step, _, err := ParseStep(`{"step":"observe","content":{"status": "success", "message": ["a", "b"]}}`)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"success","message":["a","b"]}`, step.(model.ObserveStep).Content)

	step, _, err = ParseStep(`{"step":"plan","content":null}`)
	require.NoError(t, err)
	assert.Equal(t, "", step.(model.PlanStep).Content)

	step, _, err = ParseStep(`{"step":"plan"}`)
	require.NoError(t, err)
	assert.Equal(t, "", step.(model.PlanStep).Content)
}

func TestParseStepActionArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Args
	}{
		{"absent", ``, model.NoArgs{}},
		{"null", `,"input":null`, model.NoArgs{}},
		{"keyed", `,"input":{"directory_name":"app","n":2}`, model.KeyedArgs{"directory_name": "app", "n": json.Number("2")}},
		{"positional", `,"input":["app","a.txt"]`, model.PositionalArgs{"app", "a.txt"}},
		{"scalar string", `,"input":"app"`, model.ScalarArgs{Value: "app"}},
		{"scalar number", `,"input":20`, model.ScalarArgs{Value: json.Number("20")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, _, err := ParseStep(`{"step":"action","function":"tool"` + tt.input + `}`)
			require.NoError(t, err)
			action, ok := step.(model.ActionStep)
			require.True(t, ok)
			assert.Equal(t, "tool", action.Function)
			assert.Equal(t, tt.want, action.Input)
		})
	}
}

func TestParseStepUnknownKeepsTag(t *testing.T) {
	step, _, err := ParseStep(`{"step":"dance","content":"x"}`)
	require.NoError(t, err)
	unknown := step.(model.UnknownStep)
	assert.Equal(t, "dance", unknown.Tag)
	assert.Equal(t, "x", unknown.Content)
}

func TestParseStepTrimsFences(t *testing.T) {
	for _, raw := range []string{
		"```json\n{\"step\":\"final\",\"content\":\"ok\"}\n```",
		"```\n{\"step\":\"final\",\"content\":\"ok\"}\n```",
		"  {\"step\":\"final\",\"content\":\"ok\"}  ",
	} {
		step, _, err := ParseStep(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "ok", step.(model.FinalStep).Content)
	}
}

func TestNormalizeContent(t *testing.T) {
	in := model.KeyedArgs{"file_name": `a\nb.txt`, "content": `line1\nline2\tx\r\n`}
	out := normalizeContent(in)

	keyed := out.(model.KeyedArgs)
	assert.Equal(t, "line1\nline2\tx\r\n", keyed["content"])
	assert.Equal(t, `a\nb.txt`, keyed["file_name"], "only content is unescaped")
	assert.Equal(t, `line1\nline2\tx\r\n`, in["content"], "input not modified")

	pos := model.PositionalArgs{`a\nb`}
	assert.Equal(t, pos, normalizeContent(pos))

	nonString := model.KeyedArgs{"content": json.Number("1")}
	assert.Equal(t, nonString, normalizeContent(nonString))
}
