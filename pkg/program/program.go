package program

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Config is the plain construction value of a Program.
type Config[Q, A comparable] struct {
	// Initial is the optional start state.
	Initial *Q

	// Rules is the transition function. Heads must be unique.
	Rules []domain.Rule[Q, A]

	// Halt lists the halting states. It may be empty when the engine is given
	// its own predicate or the state type implements domain.Halter.
	Halt []Q

	// Strategy selects the lookup table. The zero value is StrategyHashed.
	Strategy Strategy
}

// Program is a read-only rule table with an optional initial state.
type Program[Q, A comparable] struct {
	initial   *domain.State[Q]
	table     Table[Q, A]
	halt      map[Q]struct{}
	haltOrder []Q
	strategy  Strategy
}

// New builds a Program from cfg. It fails if two rules share a head.
func New[Q, A comparable](cfg Config[Q, A]) (*Program[Q, A], error) {
	table, err := NewTable[Q, A](cfg.Strategy)
	if err != nil {
		return nil, err
	}
	for i, r := range cfg.Rules {
		if err := table.Insert(r); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	p := &Program[Q, A]{
		table:    table,
		halt:     make(map[Q]struct{}, len(cfg.Halt)),
		strategy: cfg.Strategy,
	}
	if cfg.Initial != nil {
		s := domain.NewState(*cfg.Initial)
		p.initial = &s
	}
	for _, q := range cfg.Halt {
		if _, dup := p.halt[q]; dup {
			continue
		}
		p.halt[q] = struct{}{}
		p.haltOrder = append(p.haltOrder, q)
	}
	return p, nil
}

// FromRules builds a hashed Program without initial or halting states.
func FromRules[Q, A comparable](rules ...domain.Rule[Q, A]) (*Program[Q, A], error) {
	return New(Config[Q, A]{Rules: rules})
}

// FromPairs builds a hashed Program from a head to tail mapping.
// Rules() then follows map iteration order, which is unspecified.
func FromPairs[Q, A comparable](pairs map[domain.Head[Q, A]]domain.Tail[Q, A]) (*Program[Q, A], error) {
	rules := make([]domain.Rule[Q, A], 0, len(pairs))
	for h, t := range pairs {
		rules = append(rules, domain.Rule[Q, A]{Head: h, Tail: t})
	}
	return FromRules(rules...)
}

// Initial returns the start state, if any.
func (p *Program[Q, A]) Initial() (domain.State[Q], bool) {
	if p.initial == nil {
		return domain.State[Q]{}, false
	}
	return *p.initial, true
}

// Strategy reports the lookup strategy in use.
func (p *Program[Q, A]) Strategy() Strategy {
	return p.strategy
}

// FindTail returns the tail for (state, symbol).
func (p *Program[Q, A]) FindTail(state domain.State[Q], symbol A) (domain.Tail[Q, A], bool) {
	return p.table.Find(domain.Head[Q, A]{State: state, Symbol: symbol})
}

// FilterByState returns every rule whose head is in state, in table order.
// It is meant for introspection, not for the step loop.
func (p *Program[Q, A]) FilterByState(state domain.State[Q]) []domain.Rule[Q, A] {
	var out []domain.Rule[Q, A]
	for _, r := range p.table.Rules() {
		if r.Head.State == state {
			out = append(out, r)
		}
	}
	return out
}

// Rules returns all rules in insertion order.
func (p *Program[Q, A]) Rules() []domain.Rule[Q, A] {
	return p.table.Rules()
}

// Len returns the number of rules.
func (p *Program[Q, A]) Len() int {
	return p.table.Len()
}

// HaltStates returns the declared halting states in declaration order.
func (p *Program[Q, A]) HaltStates() []Q {
	return append([]Q(nil), p.haltOrder...)
}

// HasHaltStates reports whether the program declares any halting state.
func (p *Program[Q, A]) HasHaltStates() bool {
	return len(p.halt) > 0
}

// IsHalt reports whether state is a declared halting state.
func (p *Program[Q, A]) IsHalt(state domain.State[Q]) bool {
	_, ok := p.halt[state.Value()]
	return ok
}

// States returns every state mentioned by the program (initial, heads, tails,
// halting states), each once, in first-seen order.
func (p *Program[Q, A]) States() []Q {
	seen := make(map[Q]struct{})
	var out []Q
	add := func(q Q) {
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	if p.initial != nil {
		add(p.initial.Value())
	}
	for _, r := range p.table.Rules() {
		add(r.Head.State.Value())
		add(r.Tail.Next.Value())
	}
	for _, q := range p.haltOrder {
		add(q)
	}
	return out
}

// Alphabet returns every symbol read or written by the rules, each once, in first-seen order.
func (p *Program[Q, A]) Alphabet() []A {
	seen := make(map[A]struct{})
	var out []A
	add := func(a A) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	for _, r := range p.table.Rules() {
		add(r.Head.Symbol)
		add(r.Tail.Write)
	}
	return out
}

// Config returns a Config that rebuilds an equivalent Program.
func (p *Program[Q, A]) Config() Config[Q, A] {
	cfg := Config[Q, A]{
		Rules:    p.table.Rules(),
		Halt:     p.HaltStates(),
		Strategy: p.strategy,
	}
	if p.initial != nil {
		q := p.initial.Value()
		cfg.Initial = &q
	}
	return cfg
}
