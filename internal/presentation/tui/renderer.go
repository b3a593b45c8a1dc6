package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/turing/pkg/program"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// RuleTable describes p as Markdown: a summary list followed by the rule table.
func RuleTable[Q, A comparable](p *program.Program[Q, A]) string {
	var sb strings.Builder
	sb.WriteString("# Program\n\n")

	initial := "-"
	if q, ok := p.Initial(); ok {
		initial = code(q.Value())
	}
	fmt.Fprintf(&sb, "- **Initial state:** %s\n", initial)
	fmt.Fprintf(&sb, "- **Halting states:** %s\n", codes(p.HaltStates()))
	fmt.Fprintf(&sb, "- **States:** %d\n", len(p.States()))
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n", codes(p.Alphabet()))
	fmt.Fprintf(&sb, "- **Lookup:** %s\n\n", p.Strategy())

	sb.WriteString("| State | Read | Write | Move | Next |\n")
	sb.WriteString("|-------|------|-------|------|------|\n")
	for _, r := range p.Rules() {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			code(r.Head.State.Value()), code(r.Head.Symbol), code(r.Tail.Write),
			r.Tail.Direction, code(r.Tail.Next.Value()))
	}
	return sb.String()
}

func code(v any) string {
	return "`" + strings.ReplaceAll(fmt.Sprint(v), "|", "\\|") + "`"
}

func codes[T any](vs []T) string {
	if len(vs) == 0 {
		return "-"
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = code(v)
	}
	return strings.Join(out, ", ")
}
