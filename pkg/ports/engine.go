package ports

import "github.com/aretw0/turing/pkg/domain"

// Driver couples a machine state with a tape.
// The Engine holds the only reference to its Driver while it runs.
type Driver[Q, A comparable] interface {
	// State returns the current machine state.
	State() domain.State[Q]

	// Head returns the current (state, position) pair.
	Head() domain.Head[Q, int]

	// Read returns the symbol under the head.
	Read() (A, error)

	// Apply writes the tail's symbol, moves in its direction and switches to its next state.
	Apply(tail domain.Tail[Q, A]) error
}
