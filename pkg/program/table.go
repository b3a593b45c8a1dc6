package program

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Table is a lookup strategy for rules.
type Table[Q, A comparable] interface {
	// Insert adds a rule. It fails with domain.ErrDuplicateHead if the head is taken.
	Insert(rule domain.Rule[Q, A]) error

	// Find returns the tail registered for head.
	Find(head domain.Head[Q, A]) (domain.Tail[Q, A], bool)

	// Rules returns the rules in insertion order.
	Rules() []domain.Rule[Q, A]

	// Len returns the number of rules.
	Len() int
}

// Strategy selects the Table implementation used by New.
type Strategy int

const (
	// StrategyHashed indexes rules by head for O(1) lookup.
	StrategyHashed Strategy = iota
	// StrategyLinear keeps rules in a slice and scans them in order.
	StrategyLinear
)

func (s Strategy) String() string {
	switch s {
	case StrategyHashed:
		return "hashed"
	case StrategyLinear:
		return "linear"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// NewTable returns an empty table for the strategy.
func NewTable[Q, A comparable](s Strategy) (Table[Q, A], error) {
	switch s {
	case StrategyHashed:
		return NewHashed[Q, A](), nil
	case StrategyLinear:
		return NewLinear[Q, A](), nil
	}
	return nil, fmt.Errorf("unknown lookup strategy %d", int(s))
}

// Linear is an ordered rule table compared by value.
type Linear[Q, A comparable] struct {
	rules []domain.Rule[Q, A]
}

// NewLinear creates an empty linear table.
func NewLinear[Q, A comparable]() *Linear[Q, A] {
	return &Linear[Q, A]{}
}

func (l *Linear[Q, A]) Insert(rule domain.Rule[Q, A]) error {
	if _, ok := l.Find(rule.Head); ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateHead, rule.Head)
	}
	l.rules = append(l.rules, rule)
	return nil
}

func (l *Linear[Q, A]) Find(head domain.Head[Q, A]) (domain.Tail[Q, A], bool) {
	for _, r := range l.rules {
		if r.Head == head {
			return r.Tail, true
		}
	}
	return domain.Tail[Q, A]{}, false
}

func (l *Linear[Q, A]) Rules() []domain.Rule[Q, A] {
	return append([]domain.Rule[Q, A](nil), l.rules...)
}

func (l *Linear[Q, A]) Len() int { return len(l.rules) }

// Hashed is a keyed rule table. It remembers insertion order for Rules.
type Hashed[Q, A comparable] struct {
	index map[domain.Head[Q, A]]domain.Tail[Q, A]
	order []domain.Head[Q, A]
}

// NewHashed creates an empty hashed table.
func NewHashed[Q, A comparable]() *Hashed[Q, A] {
	return &Hashed[Q, A]{index: make(map[domain.Head[Q, A]]domain.Tail[Q, A])}
}

func (h *Hashed[Q, A]) Insert(rule domain.Rule[Q, A]) error {
	if _, ok := h.index[rule.Head]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateHead, rule.Head)
	}
	h.index[rule.Head] = rule.Tail
	h.order = append(h.order, rule.Head)
	return nil
}

func (h *Hashed[Q, A]) Find(head domain.Head[Q, A]) (domain.Tail[Q, A], bool) {
	t, ok := h.index[head]
	return t, ok
}

func (h *Hashed[Q, A]) Rules() []domain.Rule[Q, A] {
	out := make([]domain.Rule[Q, A], 0, len(h.order))
	for _, head := range h.order {
		out = append(out, domain.Rule[Q, A]{Head: head, Tail: h.index[head]})
	}
	return out
}

func (h *Hashed[Q, A]) Len() int { return len(h.index) }
