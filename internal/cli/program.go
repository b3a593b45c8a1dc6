package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/program"
)

// ExtTM is the extension of the compact text rule format.
const ExtTM = ".tm"

// LoadProgram reads a program with string states and symbols, choosing the
// loader by extension: .json, .yaml/.yml or .tm.
func LoadProgram(path string) (*program.Program[string, string], error) {
	if strings.EqualFold(filepath.Ext(path), ExtTM) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		p, err := compiler.NewParser().Compile(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return p, nil
	}
	return program.LoadFile[string, string](path)
}

// SaveProgram writes p to path, choosing the format by extension.
func SaveProgram(path string, p *program.Program[string, string]) error {
	if strings.EqualFold(filepath.Ext(path), ExtTM) {
		return os.WriteFile(path, compiler.Print(p), 0644)
	}
	return program.ExportFile(path, p)
}

// ParseTape splits a --tape value into symbols. Comma separated values are
// split on commas; anything else is one symbol per rune.
func ParseTape(s string) []string {
	if s == "" {
		return []string{}
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
