/*
Package turing simulates deterministic single-tape Turing machines.

Given a finite rule table and an initial tape, a Machine executes state transitions
step by step until a halting state is reached or an error occurs.

# Concept

The transition function lives in a Program: a read-only table mapping a Head
(state, symbol under the head) to a Tail (direction, next state, symbol to write).
A Driver couples the current state with a Tape it owns, and the Machine repeatedly
reads, looks up, writes, moves and transitions until the halting predicate holds.

# Key Features

  - Deterministic Execution: lookups are a partial function; duplicate heads are rejected.
  - Two Tapes: a bounded tape that grows only at its ends, and a sparse infinite tape.
  - Faithful Semantics: Run has no iteration cap, like the mathematical model.
    Use a Runner for step or time bounds; it reports ErrExitWithoutHalting.
  - Flat Dumps: programs load from and export to JSON or YAML (see package program).

# Usage

	rules := []domain.Rule[string, int]{
		domain.NewRule("q0", 1, domain.Right, "q0", 0),
		domain.NewRule("q0", 0, domain.Stay, "halt", 1),
	}
	p, err := program.New(program.Config[string, int]{Rules: rules, Halt: []string{"halt"}})
	if err != nil {
		log.Fatal(err)
	}

	m := turing.New(turing.NewDriver("q0", tape.NewBounded(1, 0, 1, 1)))
	m.Load(p)
	if err := m.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(m.Tape().Cells()) // [0 1 1 1]
*/
package turing
