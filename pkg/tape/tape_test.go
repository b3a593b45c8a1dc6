package tape_test

import (
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/tape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounded_Contract(t *testing.T) {
	ports.RunTapeContract(t, func(cells ...int) ports.Tape[int] {
		return tape.NewBounded(cells...)
	}, 1, 2)
}

func TestSparse_Contract(t *testing.T) {
	ports.RunTapeContract(t, func(cells ...string) ports.Tape[string] {
		return tape.NewSparse("_", cells...)
	}, "a", "b")
}

func TestBounded_ReadOutOfBounds(t *testing.T) {
	tp := tape.NewBounded(1, 0)
	tp.Shift(domain.Left)

	_, err := tp.Read()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds)

	var oob *domain.IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, -1, oob.Index)
	assert.Equal(t, 2, oob.Len)
}

func TestBounded_PrependAtOrigin(t *testing.T) {
	tp := tape.NewBounded(1, 0)
	tp.Shift(domain.Left)
	require.Equal(t, -1, tp.Position())

	require.NoError(t, tp.Write(7))
	assert.Equal(t, 0, tp.Position(), "prepend re-anchors the cursor at the new origin")
	assert.Equal(t, []int{7, 1, 0}, tp.Cells())

	got, err := tp.Read()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestBounded_CannotGrowInTheGap(t *testing.T) {
	tp := tape.NewBounded(1)
	tp.Shift(domain.Right)
	tp.Shift(domain.Right)

	err := tp.Write(3)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds)
	assert.Equal(t, []int{1}, tp.Cells())

	tp.Seek(-2)
	assert.ErrorIs(t, tp.Write(3), domain.ErrIndexOutOfBounds)
}

func TestBounded_BlankGrowthCells(t *testing.T) {
	tp := tape.NewBoundedBlank("_", "1")

	tp.Shift(domain.Right)
	got, err := tp.Read()
	require.NoError(t, err)
	assert.Equal(t, "_", got, "the append cell reads as blank")

	tp.Shift(domain.Right)
	_, err = tp.Read()
	assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds, "only the adjacent cell is readable")

	tp.Seek(-1)
	got, err = tp.Read()
	require.NoError(t, err)
	assert.Equal(t, "_", got)
}

func TestSparse_DefaultReads(t *testing.T) {
	tp := tape.NewSparse(0)
	assert.Equal(t, 0, tp.Len())
	assert.Empty(t, tp.Cells())

	tp.Seek(-1000)
	got, err := tp.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	assert.Equal(t, 0, tp.Len(), "reading does not materialize cells")
}

func TestSparse_Window(t *testing.T) {
	tp := tape.NewSparse("_", "a", "b")
	tp.Seek(-2)
	require.NoError(t, tp.Write("z"))

	lo, hi, ok := tp.Bounds()
	require.True(t, ok)
	assert.Equal(t, -2, lo)
	assert.Equal(t, 1, hi)
	assert.Equal(t, []string{"z", "_", "a", "b"}, tp.Cells())
	assert.Equal(t, []string{"_", "a"}, tp.Window(-1, 0))
	assert.Empty(t, tp.Window(3, 2))
}

func TestSparse_WriteBlankErases(t *testing.T) {
	tp := tape.NewSparse("_", "a")
	require.NoError(t, tp.Write("_"))

	got, _ := tp.Read()
	assert.Equal(t, "_", got)
	assert.Equal(t, []string{"_"}, tp.Cells())
}

func TestBounded_StartAt(t *testing.T) {
	tp := tape.NewBoundedAt(2, 'a', 'b', 'c')

	sym, err := tp.Read()
	require.NoError(t, err)
	assert.Equal(t, 'c', sym)
	assert.Equal(t, 0, tp.Ticks())
}
