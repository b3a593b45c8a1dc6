package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []string
	CurrentState  string
}

// GenerateMermaid produces a Mermaid flowchart of the rule table of p.
// It applies semantic styling:
// - Initial: ((Circle))
// - Halting: (((Double Circle)))
// - Default: [Rectangle]
// Each rule becomes an edge labelled "read/write,direction".
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid[Q, A comparable](p *program.Program[Q, A], overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	initial, hasInitial := p.Initial()
	for _, q := range p.States() {
		name := fmt.Sprint(q)
		safeID := sanitizeMermaidID(name)

		// Node Shape based on role
		opener, closer := "[", "]"
		switch {
		case p.IsHalt(domain.NewState(q)):
			opener, closer = "(((", ")))"
		case hasInitial && initial.Value() == q:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(name), closer)
	}

	for _, r := range p.Rules() {
		from := sanitizeMermaidID(fmt.Sprint(r.Head.State.Value()))
		to := sanitizeMermaidID(fmt.Sprint(r.Tail.Next.Value()))
		label := fmt.Sprintf("%v/%v,%s", r.Head.Symbol, r.Tail.Write, arrowOf(r.Tail.Direction))
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", from, escapeLabel(label), to)
	}

	if p.HasHaltStates() {
		sb.WriteString("\n    classDef halt fill:#c8e6c9,stroke:#2e7d32,color:#000;\n")
		for _, q := range p.HaltStates() {
			fmt.Fprintf(&sb, "    class %s halt;\n", sanitizeMermaidID(fmt.Sprint(q)))
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedStates {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentState != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentState))
		}
	}

	return sb.String()
}

func arrowOf(d domain.Direction) string {
	switch d {
	case domain.Left:
		return "L"
	case domain.Right:
		return "R"
	}
	return "S"
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

// sanitizeMermaidID keeps letters, digits and underscores.
// "end" is reserved by Mermaid and gets a suffix.
func sanitizeMermaidID(id string) string {
	s := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, id)
	if strings.EqualFold(s, "end") {
		s += "_"
	}
	return s
}
