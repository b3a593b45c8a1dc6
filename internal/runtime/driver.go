package runtime

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/program"
)

var _ ports.Driver[string, int] = (*Driver[string, int])(nil)

// Driver couples a (state, position) head with a tape it owns exclusively.
type Driver[Q, A comparable] struct {
	head domain.Head[Q, int]
	tape ports.Tape[A]
}

// NewDriver creates a driver in state q over tape. The position mirrors the tape cursor.
func NewDriver[Q, A comparable](q Q, tape ports.Tape[A]) *Driver[Q, A] {
	return &Driver[Q, A]{
		head: domain.Head[Q, int]{State: domain.NewState(q), Symbol: tape.Position()},
		tape: tape,
	}
}

// NewDriverFromProgram creates a driver in the program's initial state.
func NewDriverFromProgram[Q, A comparable](p *program.Program[Q, A], tape ports.Tape[A]) (*Driver[Q, A], error) {
	s, ok := p.Initial()
	if !ok {
		return nil, fmt.Errorf("cannot place driver: %w", domain.ErrNoInitialState)
	}
	return NewDriver(s.Value(), tape), nil
}

func (d *Driver[Q, A]) State() domain.State[Q] {
	return d.head.State
}

// SetState replaces the current state without touching the tape.
func (d *Driver[Q, A]) SetState(q Q) {
	d.head.State = domain.NewState(q)
}

func (d *Driver[Q, A]) Position() int {
	return d.head.Symbol
}

func (d *Driver[Q, A]) Head() domain.Head[Q, int] {
	return d.head
}

// Tape exposes the underlying tape for inspection.
func (d *Driver[Q, A]) Tape() ports.Tape[A] {
	return d.tape
}

func (d *Driver[Q, A]) Read() (A, error) {
	return d.tape.Read()
}

// Write stores a symbol under the head.
func (d *Driver[Q, A]) Write(symbol A) error {
	err := d.tape.Write(symbol)
	d.sync()
	return err
}

// Shift moves the head.
func (d *Driver[Q, A]) Shift(dir domain.Direction) {
	d.tape.Shift(dir)
	d.sync()
}

// Apply writes, moves and transitions, in that order.
// The state is left untouched if the write fails.
func (d *Driver[Q, A]) Apply(tail domain.Tail[Q, A]) error {
	if err := d.Write(tail.Write); err != nil {
		return err
	}
	d.Shift(tail.Direction)
	d.head.State = tail.Next
	return nil
}

// sync mirrors the tape cursor, which may be re-anchored by a prepend.
func (d *Driver[Q, A]) sync() {
	d.head.Symbol = d.tape.Position()
}
