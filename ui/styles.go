package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimColor       = lipgloss.Color("7")
	accentColor    = lipgloss.Color("12")
	successColor   = lipgloss.Color("10")
	warningColor   = lipgloss.Color("11")
	dangerColor    = lipgloss.Color("9")
	highlightColor = lipgloss.Color("13")
	infoColor      = lipgloss.Color("14")

	// Banner title
	BannerStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Banner underline and the "Processing" line
	RuleStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	PlanStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	InputStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	// Action and output lines
	ActionStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// Observations and warnings
	ObserveStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)

// FormatFooter formats a footer string with alternating keys and descriptions.
// Keys remain default color, descriptions are rendered in accent blue+bold.
// Usage: FormatFooter("j/k", "Navigate", "Enter", "Select", "Esc", "Cancel")
// Result: "j/k Navigate  Enter Select  Esc Cancel"
func FormatFooter(parts ...string) string {
	descStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	var result []string
	for i := 0; i < len(parts); i += 2 {
		if i+1 < len(parts) {
			result = append(result, parts[i]+" "+descStyle.Render(parts[i+1]))
		}
	}
	return strings.Join(result, "  ")
}
