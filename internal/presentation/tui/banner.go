package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Turing to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Amber to teal, like an old tape console
	lines := []struct {
		text  string
		color string
	}{
		{"  _____            _", "#fbbf24"},
		{" |_   _|   _ _ __ (_)_ __   __ _", "#f59e0b"},
		{"   | || | | | '__|| | '_ \\ / _` |", "#84cc16"},
		{"   | || |_| | |   | | | | | (_| |", "#22c55e"},
		{"   |_| \\__,_|_|   |_|_| |_|\\__, |", "#14b8a6"},
		{"                           |___/", "#0d9488"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
