package tape

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

var _ ports.Tape[int] = (*Sparse[int])(nil)

// Sparse is a logically infinite tape. Only cells holding a non-blank symbol are stored.
type Sparse[A comparable] struct {
	cells map[int]A
	blank A
	pos   int
	ticks int

	// materialized window; valid when hasWindow is set
	lo, hi    int
	hasWindow bool
}

// NewSparse creates a sparse tape seeded with cells at positions 0..len-1.
func NewSparse[A comparable](blank A, cells ...A) *Sparse[A] {
	t := &Sparse[A]{
		cells: make(map[int]A, len(cells)),
		blank: blank,
	}
	for i, c := range cells {
		t.store(i, c)
	}
	return t
}

// Seek places the cursor without counting a tick.
func (t *Sparse[A]) Seek(pos int) {
	t.pos = pos
}

// Read never fails: unwritten cells read as the blank symbol.
func (t *Sparse[A]) Read() (A, error) {
	return t.At(t.pos), nil
}

// At returns the symbol at an arbitrary position.
func (t *Sparse[A]) At(pos int) A {
	if c, ok := t.cells[pos]; ok {
		return c
	}
	return t.blank
}

func (t *Sparse[A]) Write(symbol A) error {
	t.store(t.pos, symbol)
	return nil
}

func (t *Sparse[A]) store(pos int, symbol A) {
	if symbol == t.blank {
		delete(t.cells, pos)
	} else {
		t.cells[pos] = symbol
	}
	t.touch(pos)
}

// touch widens the materialized window, so that written cells (blank or not)
// stay visible in Cells.
func (t *Sparse[A]) touch(pos int) {
	if !t.hasWindow {
		t.lo, t.hi, t.hasWindow = pos, pos, true
		return
	}
	t.lo = min(t.lo, pos)
	t.hi = max(t.hi, pos)
}

func (t *Sparse[A]) Shift(dir domain.Direction) {
	t.pos = dir.Apply(t.pos)
	t.ticks++
}

func (t *Sparse[A]) Position() int { return t.pos }

func (t *Sparse[A]) Ticks() int { return t.ticks }

// Len returns the width of the materialized window.
func (t *Sparse[A]) Len() int {
	if !t.hasWindow {
		return 0
	}
	return t.hi - t.lo + 1
}

// Bounds returns the leftmost and rightmost written positions.
// ok is false for a tape that was never written.
func (t *Sparse[A]) Bounds() (lo, hi int, ok bool) {
	return t.lo, t.hi, t.hasWindow
}

// Cells returns the materialized window, blank-filled.
func (t *Sparse[A]) Cells() []A {
	if !t.hasWindow {
		return []A{}
	}
	return t.Window(t.lo, t.hi)
}

// Window returns the symbols in [from, to]; an inverted range is empty.
func (t *Sparse[A]) Window(from, to int) []A {
	if to < from {
		return []A{}
	}
	out := make([]A, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, t.At(p))
	}
	return out
}

func (t *Sparse[A]) Blank() A { return t.blank }
