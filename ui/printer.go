package ui

import (
	"fmt"
	"io"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"projgen/model"
)

const (
	bannerTitle   = "Welcome to the AI Terminal Project Generator ⚙️"
	markdownWidth = 100
	clearScreen   = "\033[H\033[2J"
)

// Printer writes the session's user-facing output. It implements agent.Reporter.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) line(style lipgloss.Style, text string) {
	fmt.Fprintln(p.out, style.Render(text))
}

// Banner clears the screen when clear is set and prints the welcome title
// underlined to its display width.
func (p *Printer) Banner(clear bool) {
	if clear {
		fmt.Fprint(p.out, clearScreen)
	}
	p.line(BannerStyle, bannerTitle)
	p.line(RuleStyle, strings.Repeat("-", runewidth.StringWidth(bannerTitle)+2))
}

func (p *Printer) Goodbye() {
	p.line(ActionStyle, "👋 Goodbye! See you next time.")
}

func (p *Printer) Processing() {
	p.line(RuleStyle, "Processing your request... ⏳")
}

// Response prints the request result, rendering Markdown for the terminal.
func (p *Printer) Response(result string) {
	rendered := strings.TrimRight(string(markdown.Render(result, markdownWidth, 0)), "\n")
	if rendered == "" {
		rendered = result
	}
	fmt.Fprintf(p.out, "Response: %s\n", rendered)
}

func (p *Printer) Plan(content string) {
	p.line(PlanStyle, "🧠 Planning: "+content)
}

func (p *Printer) Action(function string, input model.Args) {
	p.line(ActionStyle, fmt.Sprintf("🔨 Action: %s with input: %s", function, model.FormatArgs(input)))
}

func (p *Printer) ToolResult(result model.ToolResult) {
	switch result.Status {
	case model.StatusSuccess:
		p.line(SuccessStyle, "✅ Success: "+result.Text())
	case model.StatusPartial:
		p.line(PlanStyle, "⚠️ Partial: "+result.Text())
	default:
		p.line(ErrorStyle, "❌ Error: "+result.Text())
	}
}

func (p *Printer) Output(content string) {
	p.line(ActionStyle, "📦 Output: "+content)
}

func (p *Printer) Observation(content string) {
	p.line(ObserveStyle, "👁️ Observation: "+content)
}

func (p *Printer) Final(content string) {
	p.line(SuccessStyle, "🎉 Complete: "+content)
}

func (p *Printer) Warning(msg string) {
	p.line(ObserveStyle, "⚠️ Warning: "+msg)
}

func (p *Printer) Error(msg string) {
	p.line(ErrorStyle, "❌ "+msg)
}

// InputPrompt formats the question of an input step.
func InputPrompt(content string) string {
	return InputStyle.Render("🔍 Input needed: " + content + ": ")
}
