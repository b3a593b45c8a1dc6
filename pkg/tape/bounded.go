package tape

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

var _ ports.Tape[int] = (*Bounded[int])(nil)

// Bounded is a contiguous tape that grows only at its ends.
//
// The cursor is signed and relative to the first materialized cell, so the cell
// one step left of the origin is -1. Writing there prepends and re-anchors the
// cursor at 0; writing at Len() appends. Any other access outside [0, Len())
// fails with *domain.IndexOutOfBoundsError.
type Bounded[A comparable] struct {
	cells []A
	pos   int
	ticks int

	blank    A
	hasBlank bool
}

// NewBounded creates a bounded tape over a copy of cells with the cursor at 0.
// Reads outside the materialized region fail.
func NewBounded[A comparable](cells ...A) *Bounded[A] {
	return &Bounded[A]{cells: append([]A(nil), cells...)}
}

// NewBoundedAt creates a bounded tape with the cursor at pos.
func NewBoundedAt[A comparable](pos int, cells ...A) *Bounded[A] {
	t := NewBounded(cells...)
	t.pos = pos
	return t
}

// NewBoundedBlank creates a bounded tape whose two growth cells (-1 and Len())
// read as blank instead of failing, so a machine can walk off either end by one
// cell and extend the tape by writing there.
func NewBoundedBlank[A comparable](blank A, cells ...A) *Bounded[A] {
	t := NewBounded(cells...)
	t.blank = blank
	t.hasBlank = true
	return t
}

// Seek places the cursor without counting a tick.
func (t *Bounded[A]) Seek(pos int) {
	t.pos = pos
}

func (t *Bounded[A]) Read() (A, error) {
	if t.pos >= 0 && t.pos < len(t.cells) {
		return t.cells[t.pos], nil
	}
	if t.hasBlank && t.atGrowthCell() {
		return t.blank, nil
	}
	var zero A
	return zero, t.outOfBounds()
}

func (t *Bounded[A]) Write(symbol A) error {
	switch {
	case t.pos >= 0 && t.pos < len(t.cells):
		t.cells[t.pos] = symbol
	case t.pos == len(t.cells):
		t.cells = append(t.cells, symbol)
	case t.pos == -1:
		t.cells = append([]A{symbol}, t.cells...)
		t.pos = 0
	default:
		return t.outOfBounds()
	}
	return nil
}

func (t *Bounded[A]) Shift(dir domain.Direction) {
	t.pos = dir.Apply(t.pos)
	t.ticks++
}

func (t *Bounded[A]) Position() int { return t.pos }

func (t *Bounded[A]) Ticks() int { return t.ticks }

func (t *Bounded[A]) Len() int { return len(t.cells) }

func (t *Bounded[A]) Cells() []A {
	return append([]A(nil), t.cells...)
}

// Blank returns the growth-cell symbol, or the zero value when none was set.
func (t *Bounded[A]) Blank() A { return t.blank }

func (t *Bounded[A]) atGrowthCell() bool {
	return t.pos == -1 || t.pos == len(t.cells)
}

func (t *Bounded[A]) outOfBounds() error {
	return &domain.IndexOutOfBoundsError{Index: t.pos, Len: len(t.cells)}
}
