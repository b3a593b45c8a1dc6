package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// TapeOptions controls RenderTape.
type TapeOptions struct {
	// Profile decides how the head cell is highlighted. termenv.Ascii marks
	// it with brackets only.
	Profile termenv.Profile

	// Offset is the tape position of cells[0]. Sparse tapes start below zero.
	Offset int

	// Blank fills positions the head visits outside cells.
	Blank string
}

// RenderTape prints cells on one line with the cell under the head
// (absolute position pos) bracketed and, with a color profile, highlighted.
func RenderTape[A any](cells []A, pos int, opts TapeOptions) string {
	lo, hi := opts.Offset, opts.Offset+len(cells)-1
	lo = min(lo, pos)
	hi = max(hi, pos)

	blank := opts.Blank
	if blank == "" {
		blank = " "
	}

	parts := make([]string, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		sym := blank
		if i := p - opts.Offset; i >= 0 && i < len(cells) {
			sym = fmt.Sprint(cells[i])
		}
		if p != pos {
			parts = append(parts, " "+sym+" ")
			continue
		}
		head := "[" + sym + "]"
		if opts.Profile != termenv.Ascii {
			head = termenv.String(head).Foreground(opts.Profile.Color("#fbbf24")).Bold().String()
		}
		parts = append(parts, head)
	}
	return "|" + strings.Join(parts, "|") + "|"
}
