package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LogHooks writes every lifecycle event to logger.
// Steps are logged at debug level, everything else at info or error.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProgramLoaded: func(ctx context.Context, e *domain.ProgramEvent) {
			logger.InfoContext(ctx, "program_loaded", "rules", e.Rules, "initial", e.Initial)
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			logger.DebugContext(ctx, "step",
				"cycle", e.Cycle,
				"state", e.State,
				"symbol", e.Symbol,
				"direction", e.Direction.String(),
				"next", e.Next,
				"write", e.Write,
				"position", e.Position,
			)
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			logger.InfoContext(ctx, "halt", "cycle", e.Cycle, "state", e.State, "position", e.Position)
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			logger.ErrorContext(ctx, "error", "cycle", e.Cycle, "kind", e.Kind, "err", e.Err)
		},
	}
}

// Combine returns hooks that call each of the given hooks in order.
// Nil callbacks are skipped.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProgramLoaded: func(ctx context.Context, e *domain.ProgramEvent) {
			for _, h := range hooks {
				if h.OnProgramLoaded != nil {
					h.OnProgramLoaded(ctx, e)
				}
			}
		},
		OnStep: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStep != nil {
					h.OnStep(ctx, e)
				}
			}
		},
		OnHalt: func(ctx context.Context, e *domain.HaltEvent) {
			for _, h := range hooks {
				if h.OnHalt != nil {
					h.OnHalt(ctx, e)
				}
			}
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(ctx, e)
				}
			}
		},
	}
}
