package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/program"
)

// Engine is the core step/run loop. It holds the only reference to its Driver
// and is not safe for concurrent use.
type Engine[Q, A comparable] struct {
	driver  ports.Driver[Q, A]
	program *program.Program[Q, A]

	cycles int
	status domain.ExecutionStatus
	err    error

	halting func(any) bool
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	ctx     context.Context
}

// EngineOption configures ambient behaviour of the Engine.
type EngineOption func(*engineSettings)

type engineSettings struct {
	halting func(any) bool
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	ctx     context.Context
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(s *engineSettings) {
		s.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(s *engineSettings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithContext sets the context handed to hooks and log records.
// It does not make Step or Run cancellable.
func WithContext(ctx context.Context) EngineOption {
	return func(s *engineSettings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithHalting overrides the halting predicate.
// A predicate written for another state type never reports halting.
func WithHalting[Q comparable](fn domain.HaltFunc[Q]) EngineOption {
	return func(s *engineSettings) {
		if fn == nil {
			s.halting = nil
			return
		}
		s.halting = func(v any) bool {
			st, ok := v.(domain.State[Q])
			return ok && fn(st)
		}
	}
}

// NewEngine creates an engine around driver with no program loaded.
func NewEngine[Q, A comparable](driver ports.Driver[Q, A], opts ...EngineOption) *Engine[Q, A] {
	s := &engineSettings{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return &Engine[Q, A]{
		driver:  driver,
		status:  domain.StatusIdle,
		halting: s.halting,
		hooks:   s.hooks,
		logger:  s.logger,
		ctx:     s.ctx,
	}
}

// Load sets the program. The engine becomes Ready unless it already reached a
// terminal status.
func (e *Engine[Q, A]) Load(p *program.Program[Q, A]) {
	e.program = p
	if p == nil {
		return
	}
	if e.status == domain.StatusIdle {
		e.status = domain.StatusReady
	}

	evt := &domain.ProgramEvent{
		EventBase: e.event(domain.EventProgramLoaded),
		Rules:     p.Len(),
	}
	if s, ok := p.Initial(); ok {
		evt.Initial = s.Value()
	}
	e.logger.InfoContext(e.ctx, "program_loaded", "rules", evt.Rules, "initial", evt.Initial)
	if e.hooks.OnProgramLoaded != nil {
		e.hooks.OnProgramLoaded(e.ctx, evt)
	}
}

// Program returns the loaded program, or nil.
func (e *Engine[Q, A]) Program() *program.Program[Q, A] {
	return e.program
}

// Driver returns the driven head/tape pair.
func (e *Engine[Q, A]) Driver() ports.Driver[Q, A] {
	return e.driver
}

// Cycles returns the number of transitions applied so far.
func (e *Engine[Q, A]) Cycles() int {
	return e.cycles
}

// Status returns the execution status.
func (e *Engine[Q, A]) Status() domain.ExecutionStatus {
	return e.status
}

// Err returns the error that moved the engine to StatusErrored, if any.
func (e *Engine[Q, A]) Err() error {
	return e.err
}

// IsHalted reports whether the driver's current state satisfies the halting predicate.
//
// The predicate is, in order: the WithHalting override; the state value's own
// domain.Halter answer; membership in the program's halting states. With none
// of them available no state halts.
func (e *Engine[Q, A]) IsHalted() bool {
	return e.isHalting(e.driver.State())
}

func (e *Engine[Q, A]) isHalting(s domain.State[Q]) bool {
	if e.halting != nil {
		return e.halting(s)
	}
	if halted, ok := domain.SelfHalting(s); ok {
		return halted
	}
	if e.program != nil {
		return e.program.IsHalt(s)
	}
	return false
}

// Step applies one transition and returns the head it was applied to.
//
// It returns (nil, nil) without touching the tape when the machine is already
// in a halting state. A missing program, an unreadable cell or a missing rule
// is returned as an error; the last two are terminal and repeated by every
// later call.
func (e *Engine[Q, A]) Step() (*domain.Head[Q, A], error) {
	if e.program == nil {
		e.report(domain.ErrNoProgram)
		return nil, domain.ErrNoProgram
	}
	if e.status == domain.StatusErrored {
		return nil, e.err
	}

	state := e.driver.State()
	if e.isHalting(state) {
		e.halt(state)
		return nil, nil
	}

	symbol, err := e.driver.Read()
	if err != nil {
		return nil, e.fail(fmt.Errorf("read at cycle %d: %w", e.cycles, err))
	}

	tail, ok := e.program.FindTail(state, symbol)
	if !ok {
		return nil, e.fail(&domain.NoRuleFoundError{
			Cycle:  e.cycles,
			State:  state.Value(),
			Symbol: symbol,
		})
	}

	if err := e.driver.Apply(tail); err != nil {
		return nil, e.fail(fmt.Errorf("apply at cycle %d: %w", e.cycles, err))
	}
	e.cycles++
	e.status = domain.StatusReady

	pos := e.driver.Head().Symbol
	e.logger.DebugContext(e.ctx, "step",
		"cycle", e.cycles,
		"state", state.Value(),
		"symbol", symbol,
		"direction", tail.Direction.String(),
		"next", tail.Next.Value(),
		"write", tail.Write,
		"position", pos,
	)
	if e.hooks.OnStep != nil {
		e.hooks.OnStep(e.ctx, &domain.StepEvent{
			EventBase: e.event(domain.EventStep),
			State:     state.Value(),
			Symbol:    symbol,
			Direction: tail.Direction,
			Next:      tail.Next.Value(),
			Write:     tail.Write,
			Position:  pos,
		})
	}

	prev := domain.Head[Q, A]{State: state, Symbol: symbol}
	return &prev, nil
}

// Run steps until the machine halts or a step fails.
// There is no iteration cap: a program without a reachable halting state runs forever.
func (e *Engine[Q, A]) Run() error {
	if e.program == nil {
		e.report(domain.ErrNoProgram)
		return domain.ErrNoProgram
	}
	for {
		head, err := e.Step()
		if err != nil {
			return err
		}
		if head == nil {
			return nil
		}
	}
}

func (e *Engine[Q, A]) halt(state domain.State[Q]) {
	if e.status == domain.StatusHalted {
		return
	}
	e.status = domain.StatusHalted

	pos := e.driver.Head().Symbol
	e.logger.InfoContext(e.ctx, "halted", "cycle", e.cycles, "state", state.Value(), "position", pos)
	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(e.ctx, &domain.HaltEvent{
			EventBase: e.event(domain.EventHalt),
			State:     state.Value(),
			Position:  pos,
		})
	}
}

// fail moves the engine to its terminal error status.
func (e *Engine[Q, A]) fail(err error) error {
	e.status = domain.StatusErrored
	e.err = err
	e.report(err)
	return err
}

func (e *Engine[Q, A]) report(err error) {
	kind := domain.ErrorKind(err)
	e.logger.ErrorContext(e.ctx, "step_failed", "cycle", e.cycles, "kind", kind, "error", err)
	if e.hooks.OnError != nil {
		e.hooks.OnError(e.ctx, &domain.ErrorEvent{
			EventBase: e.event(domain.EventError),
			Kind:      kind,
			Err:       err,
		})
	}
}

func (e *Engine[Q, A]) event(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t, Cycle: e.cycles}
}
