package ports

import "github.com/aretw0/turing/pkg/domain"

// Tape defines positional symbol storage with a cursor.
// Implementations decide how the store grows and what an unwritten cell reads as.
type Tape[A comparable] interface {
	// Read returns the symbol under the cursor.
	// Bounded stores return *domain.IndexOutOfBoundsError outside their materialized region.
	Read() (A, error)

	// Write stores a symbol under the cursor, growing the store if the implementation allows.
	Write(symbol A) error

	// Shift moves the cursor. Every call counts as one tick, including Stay.
	Shift(dir domain.Direction)

	// Position returns the cursor.
	Position() int

	// Ticks returns the number of Shift calls so far.
	Ticks() int

	// Len returns the number of materialized cells.
	Len() int

	// Cells returns a copy of the materialized cells, left to right.
	Cells() []A

	// Blank returns the symbol read from an unwritten cell.
	Blank() A
}
