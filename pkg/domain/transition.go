package domain

import "fmt"

// Head describes where the machine is: a state and the symbol under the head.
// A Driver uses Head[Q, int] to pair the state with a tape position instead.
type Head[Q, A comparable] struct {
	State  State[Q]
	Symbol A
}

// NewHead builds a Head from raw values.
func NewHead[Q, A comparable](state Q, symbol A) Head[Q, A] {
	return Head[Q, A]{State: NewState(state), Symbol: symbol}
}

func (h Head[Q, A]) String() string {
	return fmt.Sprintf("(%v, %v)", h.State, h.Symbol)
}

// Tail describes what happens next: move, transition, and the symbol to write.
type Tail[Q, A comparable] struct {
	Direction Direction
	Next      State[Q]
	Write     A
}

// NewTail builds a Tail from raw values.
func NewTail[Q, A comparable](dir Direction, next Q, write A) Tail[Q, A] {
	return Tail[Q, A]{Direction: dir, Next: NewState(next), Write: write}
}

func (t Tail[Q, A]) String() string {
	return fmt.Sprintf("(%s, %v, %v)", t.Direction, t.Next, t.Write)
}

// Rule is one entry of the transition function.
type Rule[Q, A comparable] struct {
	Head Head[Q, A]
	Tail Tail[Q, A]
}

// NewRule builds the rule (state, symbol) -> (dir, next, write).
func NewRule[Q, A comparable](state Q, symbol A, dir Direction, next Q, write A) Rule[Q, A] {
	return Rule[Q, A]{
		Head: NewHead(state, symbol),
		Tail: NewTail(dir, next, write),
	}
}

func (r Rule[Q, A]) String() string {
	return r.Head.String() + " -> " + r.Tail.String()
}
