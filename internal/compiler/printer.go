package compiler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
)

// Print renders p in the .tm format accepted by Parser.
// States and symbols must not contain whitespace.
func Print[Q, A comparable](p *program.Program[Q, A]) []byte {
	var buf bytes.Buffer
	if q, ok := p.Initial(); ok {
		fmt.Fprintf(&buf, "initial %v\n", q.Value())
	}
	if halts := p.HaltStates(); len(halts) > 0 {
		names := make([]string, len(halts))
		for i, h := range halts {
			names[i] = fmt.Sprint(h)
		}
		fmt.Fprintf(&buf, "halt %s\n", strings.Join(names, " "))
	}
	if p.Strategy() != program.StrategyHashed {
		fmt.Fprintf(&buf, "strategy %s\n", p.Strategy())
	}
	for _, r := range p.Rules() {
		fmt.Fprintf(&buf, "%v %v %s %s %v %v\n",
			r.Head.State.Value(), r.Head.Symbol, Arrow,
			shortDirection(r.Tail.Direction), r.Tail.Next.Value(), r.Tail.Write)
	}
	return buf.Bytes()
}

func shortDirection(d domain.Direction) string {
	switch d {
	case domain.Left:
		return "L"
	case domain.Right:
		return "R"
	}
	return "S"
}
