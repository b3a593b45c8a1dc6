package turing_test

import (
	"fmt"
	"log"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
	"github.com/aretw0/turing/pkg/tape"
)

// ExampleNew increments a little-endian binary number written on a bounded tape.
func ExampleNew() {
	// 1. Define the rule table: carry to the right, stop at the first zero.
	p, err := program.New(program.Config[string, int]{
		Rules: []domain.Rule[string, int]{
			domain.NewRule("q0", 1, domain.Right, "q0", 0),
			domain.NewRule("q0", 0, domain.Stay, "halt", 1),
		},
		Halt: []string{"halt"},
	})
	if err != nil {
		log.Fatal(err)
	}

	// 2. Couple a head in state q0 with the tape 1101 (11 in binary).
	m := turing.New(turing.NewDriver("q0", tape.NewBounded(1, 1, 0, 1)))
	m.Load(p)

	// 3. Run until the halting state is reached.
	if err := m.Run(); err != nil {
		log.Fatal(err)
	}

	fmt.Println(m.Tape().Cells(), m.Cycles(), m.Driver().State())
	// Output: [0 0 1 1] 3 halt
}

// ExampleRunBounded shows the opt-in step limit on a machine that never halts.
func ExampleRunBounded() {
	p, _ := program.FromRules(
		domain.NewRule("loop", "_", domain.Right, "loop", "x"),
	)
	m := turing.New(turing.NewDriver("loop", tape.NewSparse("_")))
	m.Load(p)

	res, err := turing.RunBounded(m, 5)
	fmt.Println(res.Cells, res.Position)
	fmt.Println(err)
	// Output:
	// [x x x x x] 5
	// exit without halting: step limit 5 reached
}
