package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/program"
)

// Arrow separates the head of a rule from its tail.
const Arrow = "->"

// ParseError reports the line a .tm source failed on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func lineError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf(format, args...)}
}

// Parser is responsible for converting .tm sources into program configs.
//
// The format is line based:
//
//	# binary increment
//	initial q0
//	halt done
//	q0 1 -> R q0 0
//	q0 0 -> S done 1
//
// A rule reads "state symbol -> direction next write". A "strategy linear"
// directive selects the linear lookup table. Lines starting with "#" are comments.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse compiles data into a program config. It does not check for duplicate heads;
// program.New does.
func (p *Parser) Parse(data []byte) (program.Config[string, string], error) {
	var cfg program.Config[string, string]

	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch {
		case len(fields) >= 3 && fields[2] == Arrow:
			rule, err := parseRule(fields)
			if err != nil {
				return cfg, &ParseError{Line: line, Err: err}
			}
			cfg.Rules = append(cfg.Rules, rule)
		case fields[0] == "initial":
			fields = directive(fields)
			if len(fields) != 2 {
				return cfg, lineError(line, "initial takes exactly one state")
			}
			if cfg.Initial != nil {
				return cfg, lineError(line, "initial state declared twice")
			}
			q := fields[1]
			cfg.Initial = &q
		case fields[0] == "halt":
			fields = directive(fields)
			if len(fields) < 2 {
				return cfg, lineError(line, "halt needs at least one state")
			}
			cfg.Halt = append(cfg.Halt, fields[1:]...)
		case fields[0] == "strategy":
			fields = directive(fields)
			if len(fields) != 2 {
				return cfg, lineError(line, "strategy takes exactly one value")
			}
			s, err := parseStrategy(fields[1])
			if err != nil {
				return cfg, &ParseError{Line: line, Err: err}
			}
			cfg.Strategy = s
		default:
			_, err := parseRule(fields)
			return cfg, &ParseError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return cfg, fmt.Errorf("failed to read source: %w", err)
	}
	return cfg, nil
}

// Compile parses data and builds the program.
func (p *Parser) Compile(data []byte) (*program.Program[string, string], error) {
	cfg, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return program.New(cfg)
}

func parseRule(fields []string) (domain.Rule[string, string], error) {
	if len(fields) > 6 && strings.HasPrefix(fields[6], "#") {
		fields = fields[:6]
	}
	if len(fields) != 6 || fields[2] != Arrow {
		return domain.Rule[string, string]{}, fmt.Errorf("expected \"state symbol %s direction next write\", got %q", Arrow, strings.Join(fields, " "))
	}
	dir, err := domain.ParseDirection(fields[3])
	if err != nil {
		return domain.Rule[string, string]{}, err
	}
	return domain.NewRule(fields[0], fields[1], dir, fields[4], fields[5]), nil
}

func parseStrategy(s string) (program.Strategy, error) {
	switch strings.ToLower(s) {
	case "hashed":
		return program.StrategyHashed, nil
	case "linear":
		return program.StrategyLinear, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// directive drops a trailing comment. Symbols may be "#", so rule lines only
// accept comments after their sixth field.
func directive(fields []string) []string {
	for i, f := range fields {
		if strings.HasPrefix(f, "#") {
			return fields[:i]
		}
	}
	return fields
}
