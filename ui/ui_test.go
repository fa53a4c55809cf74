package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projgen/model"
	"projgen/provider"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m ProviderSelector, msgs ...tea.Msg) ProviderSelector {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.(ProviderSelector).Update(msg)
	}
	return next.(ProviderSelector)
}

func TestProviderSelectorNumberKey(t *testing.T) {
	m := press(t, NewProviderSelector(provider.SupportedProviders()), runes("2"))
	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, provider.ProviderTypeGroq, choice)
}

func TestProviderSelectorOutOfRangeNumberCancels(t *testing.T) {
	m := press(t, NewProviderSelector(provider.SupportedProviders()), runes("9"))
	_, ok := m.Choice()
	assert.False(t, ok)
}

func TestProviderSelectorNavigation(t *testing.T) {
	m := press(t, NewProviderSelector(provider.SupportedProviders()),
		runes("j"), tea.KeyMsg{Type: tea.KeyDown}, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, provider.ProviderTypeGroq, choice)

	// Cursor wraps.
	m = press(t, NewProviderSelector(provider.SupportedProviders()), runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	choice, _ = m.Choice()
	assert.Equal(t, provider.ProviderTypeOllama, choice)
}

func TestProviderSelectorCancel(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, runes("q"), {Type: tea.KeyCtrlC}} {
		m := press(t, NewProviderSelector(provider.SupportedProviders()), key)
		_, ok := m.Choice()
		assert.False(t, ok, key.String())
		assert.Empty(t, m.View())
	}
}

func TestProviderSelectorFilter(t *testing.T) {
	m := press(t, NewProviderSelector(provider.SupportedProviders()), runes("/"))
	require.True(t, m.filterMode)

	m = press(t, m, runes("a"), runes("n"), runes("t"), runes("h"))
	require.NotEmpty(t, m.filtered)
	assert.Equal(t, provider.ProviderTypeAnthropic, m.filtered[0].Type)
	assert.Contains(t, m.View(), "Anthropic")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, provider.ProviderTypeAnthropic, choice)
}

func TestProviderSelectorFilterEscRestoresList(t *testing.T) {
	m := press(t, NewProviderSelector(provider.SupportedProviders()), runes("/"), runes("x"), runes("y"), runes("z"))
	assert.Empty(t, m.filtered)
	assert.Contains(t, m.View(), "No matches found")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.filterMode)
	assert.Len(t, m.filtered, len(provider.SupportedProviders()))
	_, ok := m.Choice()
	assert.False(t, ok, "esc in filter mode only leaves the filter")
}

func TestProviderSelectorView(t *testing.T) {
	view := NewProviderSelector(provider.SupportedProviders()).View()
	assert.Contains(t, view, "Supported LLMs:")
	assert.Contains(t, view, "1. Gemini")
	assert.Contains(t, view, "2. Groq")
}

func TestPrinterReporterLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Plan("make files")
	p.Action("create_directory_in_output", model.KeyedArgs{"directory_name": "app"})
	p.ToolResult(model.Success("created"))
	p.ToolResult(model.Failure("boom"))
	p.ToolResult(model.Partial("half"))
	p.Output("built")
	p.Observation("seen")
	p.Final("done")
	p.Warning("careful")
	p.Error("Unknown tool: x")

	out := buf.String()
	for _, want := range []string{
		"🧠 Planning: make files",
		`🔨 Action: create_directory_in_output with input: {"directory_name":"app"}`,
		"✅ Success: created",
		"❌ Error: boom",
		"⚠️ Partial: half",
		"📦 Output: built",
		"👁️ Observation: seen",
		"🎉 Complete: done",
		"⚠️ Warning: careful",
		"❌ Unknown tool: x",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrinterSessionLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Banner(false)
	p.Processing()
	p.Response("All **done**")
	p.Goodbye()

	out := buf.String()
	assert.Contains(t, out, "Welcome to the AI Terminal Project Generator")
	assert.Contains(t, out, "-----")
	assert.Contains(t, out, "Processing your request... ⏳")
	assert.Contains(t, out, "Response: ")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "👋 Goodbye! See you next time.")
	assert.NotContains(t, out, clearScreen)
}

func TestPrompterReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("first\r\nsecond"), &out)

	line, err := p.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = p.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = p.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestStepInputUsesInputPrompt(t *testing.T) {
	var out bytes.Buffer
	in := StepInput{NewPrompter(strings.NewReader("react\n"), &out)}

	answer, err := in.ReadLine("Which framework")
	require.NoError(t, err)
	assert.Equal(t, "react", answer)
	assert.Contains(t, out.String(), "🔍 Input needed: Which framework: ")
}
