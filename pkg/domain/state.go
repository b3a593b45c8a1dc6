package domain

import "fmt"

// ExecutionStatus defines the current mode of the engine mechanics.
type ExecutionStatus string

const (
	StatusIdle    ExecutionStatus = "idle"    // No program loaded
	StatusReady   ExecutionStatus = "ready"   // Program loaded, not halted
	StatusHalted  ExecutionStatus = "halted"  // Halting state reached
	StatusErrored ExecutionStatus = "errored" // A step failed; terminal
)

// IsTerminal reports whether no further step can change the machine.
func (s ExecutionStatus) IsTerminal() bool {
	return s == StatusHalted || s == StatusErrored
}

// State identifies a machine configuration.
// The wrapped value is opaque to the engine: it is only compared and hashed.
type State[Q comparable] struct {
	value Q
}

// NewState wraps q as a State.
func NewState[Q comparable](q Q) State[Q] {
	return State[Q]{value: q}
}

// Value returns the wrapped configuration value.
func (s State[Q]) Value() Q {
	return s.value
}

func (s State[Q]) String() string {
	return fmt.Sprint(s.value)
}

// Halter may be implemented by a state value that knows whether it is terminal.
type Halter interface {
	IsHalted() bool
}

// HaltFunc is a halting predicate. It must be total: every state gets an answer.
type HaltFunc[Q comparable] func(State[Q]) bool

// HaltWhen returns a predicate that is true for exactly the given states.
func HaltWhen[Q comparable](states ...Q) HaltFunc[Q] {
	set := make(map[Q]struct{}, len(states))
	for _, q := range states {
		set[q] = struct{}{}
	}
	return func(s State[Q]) bool {
		_, ok := set[s.value]
		return ok
	}
}

// SelfHalting reports whether the state value implements Halter and, if so, its answer.
func SelfHalting[Q comparable](s State[Q]) (halted bool, ok bool) {
	h, ok := any(s.value).(Halter)
	if !ok {
		return false, false
	}
	return h.IsHalted(), true
}
