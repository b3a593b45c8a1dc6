package ports

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTapeContract runs a suite of tests to verify that a Tape implementation
// adheres to the defined interface contract.
// newTape must return a tape holding cells at positions 0..len-1 with the cursor at 0.
// a and b must be distinct, non-blank symbols.
func RunTapeContract[A comparable](t *testing.T, newTape func(cells ...A) Tape[A], a, b A) {
	t.Helper()

	t.Run("Write then Read", func(t *testing.T) {
		tape := newTape(a, a)
		require.NoError(t, tape.Write(b))

		got, err := tape.Read()
		require.NoError(t, err)
		assert.Equal(t, b, got, "reading without shifting must return the written symbol")
	})

	t.Run("Shift Round Trip", func(t *testing.T) {
		tape := newTape(a, b, a)
		tape.Shift(domain.Right)
		start := tape.Position()

		tape.Shift(domain.Left)
		tape.Shift(domain.Right)
		assert.Equal(t, start, tape.Position())

		tape.Shift(domain.Right)
		tape.Shift(domain.Left)
		assert.Equal(t, start, tape.Position())
	})

	t.Run("Stay Counts As Tick", func(t *testing.T) {
		tape := newTape(a)
		require.Equal(t, 0, tape.Ticks())

		tape.Shift(domain.Stay)
		assert.Equal(t, 0, tape.Position(), "stay must not move the cursor")
		assert.Equal(t, 1, tape.Ticks(), "stay must still consume a tick")

		tape.Shift(domain.Right)
		tape.Shift(domain.Left)
		assert.Equal(t, 3, tape.Ticks())
	})

	t.Run("Append At End", func(t *testing.T) {
		tape := newTape(a, a)
		tape.Shift(domain.Right)
		tape.Shift(domain.Right)
		require.NoError(t, tape.Write(b))

		assert.Equal(t, 3, tape.Len())
		assert.Equal(t, []A{a, a, b}, tape.Cells())
	})

	t.Run("Cells Is A Copy", func(t *testing.T) {
		tape := newTape(a, a)
		cells := tape.Cells()
		cells[0] = b

		got, err := tape.Read()
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})
}
