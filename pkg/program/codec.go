package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a rule dump.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported rule dump extension %q", filepath.Ext(path))
}

// Document is the canonical wire shape of a Program.
type Document[Q, A comparable] struct {
	InitialState *Q                   `json:"initial_state" yaml:"initial_state,omitempty"`
	HaltStates   []Q                  `json:"halt_states,omitempty" yaml:"halt_states,omitempty"`
	Rules        []RuleDocument[Q, A] `json:"rules" yaml:"rules"`
}

// RuleDocument is one serialized rule.
type RuleDocument[Q, A comparable] struct {
	Head HeadDocument[Q, A] `json:"head" yaml:"head"`
	Tail TailDocument[Q, A] `json:"tail" yaml:"tail"`
}

// HeadDocument is the serialized (state, symbol) pair.
type HeadDocument[Q, A comparable] struct {
	State  Q `json:"state" yaml:"state"`
	Symbol A `json:"symbol" yaml:"symbol"`
}

// TailDocument is the serialized (direction, next_state, write_symbol) triple.
type TailDocument[Q, A comparable] struct {
	Direction   domain.Direction `json:"direction" yaml:"direction"`
	NextState   Q                `json:"next_state" yaml:"next_state"`
	WriteSymbol A                `json:"write_symbol" yaml:"write_symbol"`
}

// ToDocument converts a Program to its canonical wire shape.
func ToDocument[Q, A comparable](p *Program[Q, A]) Document[Q, A] {
	doc := Document[Q, A]{
		HaltStates: p.HaltStates(),
		Rules:      make([]RuleDocument[Q, A], 0, p.Len()),
	}
	if s, ok := p.Initial(); ok {
		q := s.Value()
		doc.InitialState = &q
	}
	for _, r := range p.Rules() {
		doc.Rules = append(doc.Rules, RuleDocument[Q, A]{
			Head: HeadDocument[Q, A]{State: r.Head.State.Value(), Symbol: r.Head.Symbol},
			Tail: TailDocument[Q, A]{
				Direction:   r.Tail.Direction,
				NextState:   r.Tail.Next.Value(),
				WriteSymbol: r.Tail.Write,
			},
		})
	}
	return doc
}

// documentDTO mirrors Document with every alias older dumps may use.
// It is filled by mapstructure from a generic JSON/YAML tree.
type documentDTO struct {
	InitialState any       `mapstructure:"initial_state"`
	Initial      any       `mapstructure:"initial"`
	Start        any       `mapstructure:"start"`
	HaltStates   []any     `mapstructure:"halt_states"`
	Halt         []any     `mapstructure:"halt"`
	Rules        []ruleDTO `mapstructure:"rules"`
}

type ruleDTO struct {
	Head headDTO `mapstructure:"head"`
	Tail tailDTO `mapstructure:"tail"`
}

type headDTO struct {
	State  any `mapstructure:"state"`
	Symbol any `mapstructure:"symbol"`
	Read   any `mapstructure:"read"`
}

type tailDTO struct {
	Direction   any `mapstructure:"direction"`
	Move        any `mapstructure:"move"`
	Dir         any `mapstructure:"dir"`
	NextState   any `mapstructure:"next_state"`
	State       any `mapstructure:"state"`
	Next        any `mapstructure:"next"`
	WriteSymbol any `mapstructure:"write_symbol"`
	Symbol      any `mapstructure:"symbol"`
	Write       any `mapstructure:"write"`
}

// DecodeConfig converts a generic tree (as produced by encoding/json or yaml.v3
// into an `any`) to a Config, resolving field aliases.
func DecodeConfig[Q, A comparable](tree any) (Config[Q, A], error) {
	var cfg Config[Q, A]

	var dto documentDTO
	if err := weakDecode(tree, &dto); err != nil {
		return cfg, fmt.Errorf("invalid rule dump: %w", err)
	}

	if raw := firstSet(dto.InitialState, dto.Initial, dto.Start); raw != nil {
		q, err := decodeAs[Q](raw)
		if err != nil {
			return cfg, fmt.Errorf("initial_state: %w", err)
		}
		cfg.Initial = &q
	}

	halts := dto.HaltStates
	if len(halts) == 0 {
		halts = dto.Halt
	}
	for i, raw := range halts {
		q, err := decodeAs[Q](raw)
		if err != nil {
			return cfg, fmt.Errorf("halt_states[%d]: %w", i, err)
		}
		cfg.Halt = append(cfg.Halt, q)
	}

	cfg.Rules = make([]domain.Rule[Q, A], 0, len(dto.Rules))
	for i, r := range dto.Rules {
		rule, err := decodeRule[Q, A](r)
		if err != nil {
			return cfg, fmt.Errorf("rules[%d]: %w", i, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}
	return cfg, nil
}

func decodeRule[Q, A comparable](r ruleDTO) (domain.Rule[Q, A], error) {
	var rule domain.Rule[Q, A]

	state, err := required[Q](domain.KeyHead+"."+domain.KeyState, r.Head.State)
	if err != nil {
		return rule, err
	}
	symbol, err := required[A](domain.KeyHead+"."+domain.KeySymbol, r.Head.Symbol, r.Head.Read)
	if err != nil {
		return rule, err
	}
	next, err := required[Q](domain.KeyTail+"."+domain.KeyNextState, r.Tail.NextState, r.Tail.State, r.Tail.Next)
	if err != nil {
		return rule, err
	}
	write, err := required[A](domain.KeyTail+"."+domain.KeyWriteSymbol, r.Tail.WriteSymbol, r.Tail.Symbol, r.Tail.Write)
	if err != nil {
		return rule, err
	}
	dir, err := decodeDirection(firstSet(r.Tail.Direction, r.Tail.Move, r.Tail.Dir))
	if err != nil {
		return rule, fmt.Errorf("%s.%s: %w", domain.KeyTail, domain.KeyDirection, err)
	}

	return domain.NewRule(state, symbol, dir, next, write), nil
}

func required[T any](field string, candidates ...any) (T, error) {
	raw := firstSet(candidates...)
	if raw == nil {
		var zero T
		return zero, fmt.Errorf("%s: missing", field)
	}
	v, err := decodeAs[T](raw)
	if err != nil {
		return v, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

func decodeDirection(raw any) (domain.Direction, error) {
	switch v := raw.(type) {
	case nil:
		return domain.Stay, fmt.Errorf("missing")
	case domain.Direction:
		return v, nil
	case string:
		return domain.ParseDirection(v)
	}
	delta, err := decodeAs[int](raw)
	if err != nil {
		return domain.Stay, err
	}
	return domain.DirectionOf(delta)
}

func decodeAs[T any](raw any) (T, error) {
	if v, ok := raw.(T); ok {
		return v, nil
	}
	var out T
	err := weakDecode(raw, &out)
	return out, err
}

func weakDecode(input, result any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func firstSet(candidates ...any) any {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// Decode reads a rule dump and builds a hashed Program.
func Decode[Q, A comparable](r io.Reader, format Format) (*Program[Q, A], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule dump: %w", err)
	}

	var tree any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	cfg, err := DecodeConfig[Q, A](tree)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Encode writes p in canonical form.
func Encode[Q, A comparable](w io.Writer, p *Program[Q, A], format Format) error {
	doc := ToDocument(p)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

// LoadFile loads a rule dump, choosing the format by extension.
func LoadFile[Q, A comparable](path string) (*Program[Q, A], error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	return load[Q, A](path, format)
}

// LoadJSON loads a JSON rule dump.
func LoadJSON[Q, A comparable](path string) (*Program[Q, A], error) {
	return load[Q, A](path, FormatJSON)
}

// LoadYAML loads a YAML rule dump.
func LoadYAML[Q, A comparable](path string) (*Program[Q, A], error) {
	return load[Q, A](path, FormatYAML)
}

func load[Q, A comparable](path string, format Format) (*Program[Q, A], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rule dump: %w", err)
	}
	defer f.Close()

	p, err := Decode[Q, A](f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ExportFile writes p, choosing the format by extension.
func ExportFile[Q, A comparable](path string, p *Program[Q, A]) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	return export(path, p, format)
}

// ExportJSON writes p as a JSON rule dump.
func ExportJSON[Q, A comparable](path string, p *Program[Q, A]) error {
	return export(path, p, FormatJSON)
}

// ExportYAML writes p as a YAML rule dump.
func ExportYAML[Q, A comparable](path string, p *Program[Q, A]) error {
	return export(path, p, FormatYAML)
}

func export[Q, A comparable](path string, p *Program[Q, A], format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, p, format); err != nil {
		return fmt.Errorf("failed to encode rule dump: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write rule dump: %w", err)
	}
	return nil
}
