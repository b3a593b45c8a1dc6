package turing

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// TraceFunc observes each applied transition. prev is the head the rule matched.
type TraceFunc[Q, A comparable] func(cycle int, prev domain.Head[Q, A], m *Machine[Q, A])

// Runner drives a Machine with opt-in bounds. The core loop stays unbounded;
// the Runner only decides when to stop calling Step.
type Runner[Q, A comparable] struct {
	// MaxSteps caps the number of transitions. Zero means no cap.
	MaxSteps int

	// Trace, if set, is called after every transition.
	Trace TraceFunc[Q, A]
}

// NewRunner creates an unbounded runner.
func NewRunner[Q, A comparable]() *Runner[Q, A] {
	return &Runner[Q, A]{}
}

// Run steps m until it halts, fails, exhausts MaxSteps or ctx is done.
// The last two end with an error wrapping domain.ErrExitWithoutHalting.
func (r *Runner[Q, A]) Run(ctx context.Context, m *Machine[Q, A]) (Result[Q, A], error) {
	if m.Program() == nil {
		_, err := m.Step()
		return m.Result(), err
	}

	for steps := 0; r.MaxSteps == 0 || steps < r.MaxSteps; steps++ {
		if err := ctx.Err(); err != nil {
			return m.Result(), fmt.Errorf("%w after %d cycles: %w", domain.ErrExitWithoutHalting, m.Cycles(), err)
		}

		prev, err := m.Step()
		if err != nil {
			return m.Result(), err
		}
		if prev == nil {
			return m.Result(), nil
		}
		if r.Trace != nil {
			r.Trace(m.Cycles(), *prev, m)
		}
	}

	// The cap may land exactly on a halting state.
	if m.IsHalted() {
		if _, err := m.Step(); err != nil {
			return m.Result(), err
		}
		return m.Result(), nil
	}
	return m.Result(), fmt.Errorf("%w: step limit %d reached", domain.ErrExitWithoutHalting, r.MaxSteps)
}

// RunBounded runs m for at most maxSteps transitions.
func RunBounded[Q, A comparable](m *Machine[Q, A], maxSteps int) (Result[Q, A], error) {
	r := &Runner[Q, A]{MaxSteps: maxSteps}
	return r.Run(context.Background(), m)
}
