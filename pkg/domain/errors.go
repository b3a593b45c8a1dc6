package domain

import (
	"errors"
	"fmt"
)

// ErrNoProgram is returned when the engine is stepped without a loaded program.
var ErrNoProgram = errors.New("no program loaded")

// ErrNoRuleFound matches every *NoRuleFoundError via errors.Is.
var ErrNoRuleFound = errors.New("no rule found")

// ErrIndexOutOfBounds matches every *IndexOutOfBoundsError via errors.Is.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrExitWithoutHalting is returned when a run stopped before reaching a halting state.
var ErrExitWithoutHalting = errors.New("exit without halting")

// ErrDuplicateHead is returned when two rules share the same head.
var ErrDuplicateHead = errors.New("duplicate rule head")

// ErrNoInitialState is returned when a run needs an initial state and none is set.
var ErrNoInitialState = errors.New("no initial state")

// ErrUnknownDirection is returned for direction values other than left, right or stay.
var ErrUnknownDirection = errors.New("unknown direction")

// NoRuleFoundError reports the head that has no matching rule and the cycle it happened at.
type NoRuleFoundError struct {
	Cycle  int
	State  any
	Symbol any
}

func (e *NoRuleFoundError) Error() string {
	return fmt.Sprintf("no rule found for (%v, %v) at cycle %d", e.State, e.Symbol, e.Cycle)
}

func (e *NoRuleFoundError) Is(target error) bool {
	return target == ErrNoRuleFound
}

// IndexOutOfBoundsError reports a bounded tape access the growth rule cannot resolve.
type IndexOutOfBoundsError struct {
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for tape of length %d", e.Index, e.Len)
}

func (e *IndexOutOfBoundsError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}

// Error kinds, used as metric labels and in error events.
const (
	KindNoProgram          = "no_program"
	KindNoRule             = "no_rule"
	KindOutOfBounds        = "out_of_bounds"
	KindExitWithoutHalting = "exit_without_halting"
	KindUnknown            = "unknown"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNoProgram):
		return KindNoProgram
	case errors.Is(err, ErrNoRuleFound):
		return KindNoRule
	case errors.Is(err, ErrIndexOutOfBounds):
		return KindOutOfBounds
	case errors.Is(err, ErrExitWithoutHalting):
		return KindExitWithoutHalting
	}
	return KindUnknown
}
