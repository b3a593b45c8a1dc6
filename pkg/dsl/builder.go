package dsl

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
)

// Builder manages the rule table construction.
type Builder[Q, A comparable] struct {
	initial  *Q
	halt     []Q
	strategy program.Strategy
	states   map[Q]*StateBuilder[Q, A]
	order    []Q
}

// New creates a new rule table builder.
func New[Q, A comparable]() *Builder[Q, A] {
	return &Builder[Q, A]{
		states: make(map[Q]*StateBuilder[Q, A]),
	}
}

// Initial sets the start state.
func (b *Builder[Q, A]) Initial(q Q) *Builder[Q, A] {
	b.initial = &q
	return b
}

// Halt adds halting states.
func (b *Builder[Q, A]) Halt(qs ...Q) *Builder[Q, A] {
	b.halt = append(b.halt, qs...)
	return b
}

// Linear selects the linear lookup table.
func (b *Builder[Q, A]) Linear() *Builder[Q, A] {
	b.strategy = program.StrategyLinear
	return b
}

// State returns the builder for the rules leaving q.
// If the state already exists, it returns the existing builder.
func (b *Builder[Q, A]) State(q Q) *StateBuilder[Q, A] {
	if sb, ok := b.states[q]; ok {
		return sb
	}
	sb := &StateBuilder[Q, A]{state: q, builder: b}
	b.states[q] = sb
	b.order = append(b.order, q)
	return sb
}

// Build compiles the rules into a Program, in declaration order.
func (b *Builder[Q, A]) Build() (*program.Program[Q, A], error) {
	var rules []domain.Rule[Q, A]
	for _, q := range b.order {
		rules = append(rules, b.states[q].rules...)
	}

	p, err := program.New(program.Config[Q, A]{
		Initial:  b.initial,
		Rules:    rules,
		Halt:     b.halt,
		Strategy: b.strategy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build program: %w", err)
	}
	return p, nil
}

// StateBuilder collects the rules whose head is one state.
type StateBuilder[Q, A comparable] struct {
	state   Q
	rules   []domain.Rule[Q, A]
	builder *Builder[Q, A]
}

// On starts a rule that fires when symbol is read in this state.
func (sb *StateBuilder[Q, A]) On(symbol A) *RuleBuilder[Q, A] {
	return &RuleBuilder[Q, A]{
		parent:    sb,
		symbol:    symbol,
		write:     symbol,
		direction: domain.Stay,
	}
}

// State switches to another state of the same builder.
func (sb *StateBuilder[Q, A]) State(q Q) *StateBuilder[Q, A] {
	return sb.builder.State(q)
}

// Builder returns the parent builder.
func (sb *StateBuilder[Q, A]) Builder() *Builder[Q, A] {
	return sb.builder
}

// RuleBuilder configures the tail of a single rule. It is committed by Go.
type RuleBuilder[Q, A comparable] struct {
	parent    *StateBuilder[Q, A]
	symbol    A
	write     A
	direction domain.Direction
}

// Write sets the symbol written over the cell.
func (rb *RuleBuilder[Q, A]) Write(symbol A) *RuleBuilder[Q, A] {
	rb.write = symbol
	return rb
}

// Move sets the head movement.
func (rb *RuleBuilder[Q, A]) Move(d domain.Direction) *RuleBuilder[Q, A] {
	rb.direction = d
	return rb
}

func (rb *RuleBuilder[Q, A]) Left() *RuleBuilder[Q, A]  { return rb.Move(domain.Left) }
func (rb *RuleBuilder[Q, A]) Right() *RuleBuilder[Q, A] { return rb.Move(domain.Right) }
func (rb *RuleBuilder[Q, A]) Stay() *RuleBuilder[Q, A]  { return rb.Move(domain.Stay) }

// Go commits the rule with next as the target state and returns the state
// builder, so more rules can follow.
func (rb *RuleBuilder[Q, A]) Go(next Q) *StateBuilder[Q, A] {
	p := rb.parent
	p.rules = append(p.rules, domain.NewRule(p.state, rb.symbol, rb.direction, next, rb.write))
	return p
}
