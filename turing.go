package turing

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/program"
)

// Version of the turing module.
const Version = "0.4.0"

// Driver couples a machine state with the tape it owns.
type Driver[Q, A comparable] = runtime.Driver[Q, A]

// NewDriver creates a driver in state q over tape.
func NewDriver[Q, A comparable](q Q, tape ports.Tape[A]) *Driver[Q, A] {
	return runtime.NewDriver(q, tape)
}

// Machine is the high-level entry point of the library.
// It wraps the internal engine and is not safe for concurrent use.
type Machine[Q, A comparable] struct {
	engine *runtime.Engine[Q, A]
	driver *Driver[Q, A]
	logger *slog.Logger
}

// Option defines a functional option for configuring the Machine.
type Option func(*settings)

type settings struct {
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
}

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithLifecycleHooks(hooks))
	}
}

// WithHalting overrides the halting predicate.
func WithHalting[Q comparable](fn domain.HaltFunc[Q]) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithHalting(fn))
	}
}

// WithContext sets the context handed to hooks and log records.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		s.runtimeOpts = append(s.runtimeOpts, runtime.WithContext(ctx))
	}
}

// New creates a machine around driver. Load a program before running it.
func New[Q, A comparable](driver *Driver[Q, A], opts ...Option) *Machine[Q, A] {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	// Ensure logger is initialized so the runtime default is not overwritten with nil
	if s.logger == nil {
		s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	runtimeOpts := append([]runtime.EngineOption{runtime.WithLogger(s.logger)}, s.runtimeOpts...)
	return &Machine[Q, A]{
		engine: runtime.NewEngine[Q, A](driver, runtimeOpts...),
		driver: driver,
		logger: s.logger,
	}
}

// FromProgram places a driver at the program's initial state over tape and loads the program.
func FromProgram[Q, A comparable](p *program.Program[Q, A], tape ports.Tape[A], opts ...Option) (*Machine[Q, A], error) {
	d, err := runtime.NewDriverFromProgram(p, tape)
	if err != nil {
		return nil, err
	}
	m := New(d, opts...)
	m.Load(p)
	return m, nil
}

// Load sets the program to execute.
func (m *Machine[Q, A]) Load(p *program.Program[Q, A]) {
	m.engine.Load(p)
}

// Program returns the loaded program, or nil.
func (m *Machine[Q, A]) Program() *program.Program[Q, A] {
	return m.engine.Program()
}

// Step applies one transition and returns the head it was applied to,
// or nil once the machine is halted.
func (m *Machine[Q, A]) Step() (*domain.Head[Q, A], error) {
	return m.engine.Step()
}

// Run steps until the machine halts or fails. It never gives up on its own.
func (m *Machine[Q, A]) Run() error {
	return m.engine.Run()
}

// Cycles returns the number of transitions applied.
func (m *Machine[Q, A]) Cycles() int {
	return m.engine.Cycles()
}

// Status returns the execution status.
func (m *Machine[Q, A]) Status() domain.ExecutionStatus {
	return m.engine.Status()
}

// Err returns the terminal error, if any.
func (m *Machine[Q, A]) Err() error {
	return m.engine.Err()
}

// IsHalted reports whether the current state satisfies the halting predicate.
func (m *Machine[Q, A]) IsHalted() bool {
	return m.engine.IsHalted()
}

// Driver returns the driven head/tape pair.
func (m *Machine[Q, A]) Driver() *Driver[Q, A] {
	return m.driver
}

// Tape returns the driver's tape.
func (m *Machine[Q, A]) Tape() ports.Tape[A] {
	return m.driver.Tape()
}

// Result is a snapshot of a machine after (or during) a run.
type Result[Q, A comparable] struct {
	State    Q                      `json:"state"`
	Position int                    `json:"position"`
	Cycles   int                    `json:"cycles"`
	Ticks    int                    `json:"ticks"`
	Cells    []A                    `json:"tape"`
	Status   domain.ExecutionStatus `json:"status"`
}

// Result captures the current state, position, counters and tape contents.
func (m *Machine[Q, A]) Result() Result[Q, A] {
	tp := m.driver.Tape()
	return Result[Q, A]{
		State:    m.driver.State().Value(),
		Position: m.driver.Position(),
		Cycles:   m.engine.Cycles(),
		Ticks:    tp.Ticks(),
		Cells:    tp.Cells(),
		Status:   m.engine.Status(),
	}
}
