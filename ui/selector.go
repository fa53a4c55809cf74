package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"projgen/provider"
)

// ProviderSelector is the startup menu for choosing an LLM provider. Options can
// be picked by number, by moving the cursor, or after narrowing the list with "/".
type ProviderSelector struct {
	options     []provider.Option
	filtered    []provider.Option
	selectedIdx int

	filterMode  bool
	filterInput textinput.Model

	choice    provider.ProviderType
	cancelled bool
}

func NewProviderSelector(options []provider.Option) ProviderSelector {
	filterInput := textinput.New()
	filterInput.Placeholder = "Filter providers..."
	filterInput.Prompt = "/ "
	filterInput.CharLimit = 40

	return ProviderSelector{
		options:     options,
		filtered:    options,
		filterInput: filterInput,
	}
}

func (m ProviderSelector) Init() tea.Cmd {
	return nil
}

func (m ProviderSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		m.cancelled = true
		return m, tea.Quit
	}

	if m.filterMode {
		switch keyMsg.String() {
		case "esc":
			m.filterMode = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.filtered = m.options
			m.selectedIdx = 0
			return m, nil
		case "enter":
			return m.choose(m.selectedIdx)
		case "up":
			m.moveCursor(-1)
			return m, nil
		case "down":
			m.moveCursor(1)
			return m, nil
		}

		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "enter":
		return m.choose(m.selectedIdx)
	case "/":
		m.filterMode = true
		m.filterInput.SetValue("")
		cmd := m.filterInput.Focus()
		return m, cmd
	default:
		if n, err := strconv.Atoi(keyMsg.String()); err == nil {
			return m.choose(n - 1)
		}
	}
	return m, nil
}

// choose ends the program with the option at idx, or as cancelled when idx is
// out of range.
func (m ProviderSelector) choose(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.filtered) {
		m.cancelled = true
		return m, tea.Quit
	}
	m.choice = m.filtered[idx].Type
	return m, tea.Quit
}

func (m *ProviderSelector) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.selectedIdx = (m.selectedIdx + delta + len(m.filtered)) % len(m.filtered)
}

func (m *ProviderSelector) applyFilter() {
	filterValue := m.filterInput.Value()
	if filterValue == "" {
		m.filtered = m.options
	} else {
		targets := make([]string, len(m.options))
		for i, opt := range m.options {
			targets[i] = opt.Label + " " + string(opt.Type)
		}

		matches := fuzzy.Find(filterValue, targets)
		m.filtered = make([]provider.Option, len(matches))
		for i, match := range matches {
			m.filtered[i] = m.options[match.Index]
		}
	}

	if m.selectedIdx >= len(m.filtered) {
		m.selectedIdx = max(len(m.filtered)-1, 0)
	}
}

func (m ProviderSelector) View() string {
	if m.choice != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Supported LLMs:") + "\n")
	if m.filterMode {
		b.WriteString(m.filterInput.View() + "\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(DimStyle.Render("  No matches found") + "\n")
	}
	for i, opt := range m.filtered {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.selectedIdx {
			b.WriteString(SelectedStyle.Render("▶ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render(FormatFooter("1-9/Enter", "Select", "j/k", "Navigate", "/", "Filter", "Esc", "Cancel")) + "\n")
	return b.String()
}

// Choice returns the selected provider; ok is false when the menu was cancelled.
func (m ProviderSelector) Choice() (provider.ProviderType, bool) {
	return m.choice, !m.cancelled && m.choice != ""
}

// SelectProvider runs the selector inline on the given terminal streams.
func SelectProvider(options []provider.Option, in io.Reader, out io.Writer) (provider.ProviderType, bool, error) {
	p := tea.NewProgram(NewProviderSelector(options), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("provider selector: %w", err)
	}

	selector, ok := final.(ProviderSelector)
	if !ok {
		return "", false, nil
	}
	choice, ok := selector.Choice()
	return choice, ok, nil
}
