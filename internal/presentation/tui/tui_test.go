package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/internal/compiler"
)

func TestRenderTape(t *testing.T) {
	plain := TapeOptions{Profile: termenv.Ascii, Blank: "_"}

	t.Run("Head Inside", func(t *testing.T) {
		got := RenderTape([]int{1, 0, 1}, 1, plain)
		assert.Equal(t, "| 1 |[0]| 1 |", got)
	})

	t.Run("Head Past End", func(t *testing.T) {
		got := RenderTape([]int{1, 0}, 2, plain)
		assert.Equal(t, "| 1 | 0 |[_]|", got)
	})

	t.Run("Negative Offset", func(t *testing.T) {
		opts := plain
		opts.Offset = -2
		got := RenderTape([]string{"a", "b", "c"}, -3, opts)
		assert.Equal(t, "|[_]| a | b | c |", got)
	})

	t.Run("Empty Tape", func(t *testing.T) {
		assert.Equal(t, "|[_]|", RenderTape([]string{}, 0, plain))
	})

	t.Run("Colored", func(t *testing.T) {
		got := RenderTape([]int{7}, 0, TapeOptions{Profile: termenv.TrueColor})
		assert.Contains(t, got, "[7]")
		assert.Contains(t, got, "\x1b[")
	})
}

func TestRuleTable(t *testing.T) {
	p, err := compiler.NewParser().Compile([]byte("initial q0\nhalt done\nq0 1 -> R q0 0\nq0 | -> S done 1\n"))
	require.NoError(t, err)

	md := RuleTable(p)
	assert.Contains(t, md, "- **Initial state:** `q0`")
	assert.Contains(t, md, "- **Halting states:** `done`")
	assert.Contains(t, md, "| `q0` | `1` | `0` | right | `q0` |")
	assert.Contains(t, md, "`\\|`")
	assert.Equal(t, 2, strings.Count(md, "\n| `q0` |"))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}
