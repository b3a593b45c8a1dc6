package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/program"
)

func compile(t *testing.T, src string) *program.Program[string, string] {
	t.Helper()
	p, err := compiler.NewParser().Compile([]byte(src))
	require.NoError(t, err)
	return p
}

func codes(fs []Finding) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Code
	}
	return out
}

func TestValidate(t *testing.T) {
	// 1. Scenario A: Valid Program
	t.Run("Valid", func(t *testing.T) {
		r := Validate(compile(t, `
initial q0
halt done
q0 1 -> R q0 0
q0 0 -> S done 1
`))
		assert.Empty(t, r.Findings)
		assert.True(t, r.OK())
		assert.NoError(t, r.Err())
	})

	// 2. Scenario B: Dead End
	t.Run("DeadEnd", func(t *testing.T) {
		r := Validate(compile(t, `
initial q0
halt done
q0 1 -> R ghost 0
q0 0 -> S done 1
`))
		require.Len(t, r.Errors(), 1)
		assert.Equal(t, CodeDeadEnd, r.Errors()[0].Code)
		assert.Equal(t, "ghost", r.Errors()[0].State)
		assert.ErrorIs(t, r.Err(), ErrInvalidProgram)
		assert.Contains(t, r.Err().Error(), "state 'ghost' is not halting")
	})

	// 3. Scenario C: Warnings Only
	t.Run("Warnings", func(t *testing.T) {
		r := Validate(compile(t, `
initial a
halt h
a 0 -> R h 0
h 0 -> R a 0
island 0 -> R island 1
`))
		assert.True(t, r.OK())
		assert.Equal(t, []string{CodeHaltOwnsRules, CodeUnreachable}, codes(r.Warnings()))
		assert.Equal(t, "island", r.Warnings()[1].State)
	})

	t.Run("NoInitialNoHalt", func(t *testing.T) {
		r := Validate(compile(t, "a 0 -> R b 0\n"))
		// Without halting states a dead end is only a warning.
		assert.True(t, r.OK())
		assert.Equal(t, []string{CodeNoHaltStates, CodeDeadEnd, CodeNoInitialState}, codes(r.Warnings()))
	})
}
