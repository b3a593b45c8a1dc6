package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
)

// ErrInvalidProgram is wrapped by Report.Err.
var ErrInvalidProgram = errors.New("invalid program")

// Severity ranks a finding. Only errors fail a report.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding codes.
const (
	CodeNoInitialState = "no_initial_state"
	CodeNoHaltStates   = "no_halt_states"
	CodeUnreachable    = "unreachable_state"
	CodeDeadEnd        = "dead_end"
	CodeHaltOwnsRules  = "halt_owns_rules"
)

// Finding is a single validation result.
type Finding struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	State    string   `json:"state,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Severity, f.Message)
}

// Report collects findings in a stable order.
type Report struct {
	Findings []Finding `json:"findings"`
}

// Errors returns the error findings.
func (r Report) Errors() []Finding { return r.filter(SeverityError) }

// Warnings returns the warning findings.
func (r Report) Warnings() []Finding { return r.filter(SeverityWarning) }

// OK reports whether there are no error findings.
func (r Report) OK() bool { return len(r.Errors()) == 0 }

// Err folds the error findings into one error, or returns nil.
func (r Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, f := range errs {
		msgs[i] = f.Message
	}
	return fmt.Errorf("%w: found %d errors:\n- %s", ErrInvalidProgram, len(errs), strings.Join(msgs, "\n- "))
}

func (r Report) filter(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) add(s Severity, code, state, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: s,
		Code:     code,
		State:    state,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Validate inspects the rule graph of p.
//
// Dead ends (non-halting states that some rule enters but no rule leaves) are
// errors when p declares halting states, since reaching one always fails with
// a missing rule. Everything else is a warning.
func Validate[Q, A comparable](p *program.Program[Q, A]) Report {
	var r Report

	outgoing := make(map[Q][]Q)
	for _, rule := range p.Rules() {
		q := rule.Head.State.Value()
		outgoing[q] = append(outgoing[q], rule.Tail.Next.Value())
	}

	if !p.HasHaltStates() {
		r.add(SeverityWarning, CodeNoHaltStates, "", "no halting states declared")
	}

	for _, q := range p.HaltStates() {
		if n := len(outgoing[q]); n > 0 {
			r.add(SeverityWarning, CodeHaltOwnsRules, fmt.Sprint(q),
				"halting state '%v' owns %d rules that never fire", q, n)
		}
	}

	deadEnd := SeverityWarning
	if p.HasHaltStates() {
		deadEnd = SeverityError
	}
	for _, q := range p.States() {
		if _, leaves := outgoing[q]; leaves {
			continue
		}
		if p.IsHalt(domain.NewState(q)) {
			continue
		}
		r.add(deadEnd, CodeDeadEnd, fmt.Sprint(q), "state '%v' is not halting and has no rules", q)
	}

	initial, ok := p.Initial()
	if !ok {
		r.add(SeverityWarning, CodeNoInitialState, "", "no initial state; reachability not checked")
		return r
	}

	// Crawl the rule graph from the initial state.
	visited := map[Q]bool{initial.Value(): true}
	queue := []Q{initial.Value()}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, next := range outgoing[q] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	for _, q := range p.States() {
		if !visited[q] {
			r.add(SeverityWarning, CodeUnreachable, fmt.Sprint(q),
				"state '%v' is unreachable from '%v'", q, initial.Value())
		}
	}

	return r
}
