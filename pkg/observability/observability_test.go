package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/program"
	"github.com/aretw0/turing/pkg/tape"
)

func increment(t *testing.T) *program.Program[string, int] {
	t.Helper()
	initial := "q0"
	p, err := program.New(program.Config[string, int]{
		Initial: &initial,
		Rules: []domain.Rule[string, int]{
			domain.NewRule("q0", 1, domain.Right, "q0", 0),
			domain.NewRule("q0", 0, domain.Stay, "halt", 1),
		},
		Halt: []string{"halt"},
	})
	require.NoError(t, err)
	return p
}

func TestMetrics_Run(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	m, err := turing.FromProgram(increment(t), tape.NewBounded(1, 1, 0),
		turing.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)
	require.NoError(t, m.Run())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ProgramsLoaded))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Steps))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Halts))

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() != "turing_run_cycles" {
			continue
		}
		found = true
		h := f.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(1), h.GetSampleCount())
		assert.Equal(t, 3.0, h.GetSampleSum())
	}
	assert.True(t, found, "run cycles histogram not gathered")
}

func TestMetrics_Errors(t *testing.T) {
	metrics := observability.NewMetrics(nil)

	m, err := turing.FromProgram(increment(t), tape.NewBounded(1, 1),
		turing.WithLifecycleHooks(metrics.Hooks()))
	require.NoError(t, err)

	err = m.Run()
	assert.ErrorIs(t, err, domain.ErrIndexOutOfBounds)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Errors.WithLabelValues(domain.KindOutOfBounds)))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Halts))

	unloaded := turing.New(turing.NewDriver("q0", tape.NewBounded(0)),
		turing.WithLifecycleHooks(metrics.Hooks()))
	_, _ = unloaded.Step()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Errors.WithLabelValues(domain.KindNoProgram)))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := turing.FromProgram(increment(t), tape.NewBounded(0),
		turing.WithLifecycleHooks(observability.LogHooks(logger)))
	require.NoError(t, err)
	require.NoError(t, m.Run())

	out := buf.String()
	assert.Contains(t, out, "msg=program_loaded")
	assert.Contains(t, out, "msg=step")
	assert.Contains(t, out, "msg=halt")
	assert.Contains(t, out, "state=halt")
}

func TestCombine(t *testing.T) {
	var order []string
	first := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { order = append(order, "first") },
	}
	second := domain.LifecycleHooks{
		OnStep: func(context.Context, *domain.StepEvent) { order = append(order, "second") },
		OnHalt: func(context.Context, *domain.HaltEvent) { order = append(order, "halt") },
	}

	hooks := observability.Combine(first, second)
	hooks.OnStep(context.Background(), &domain.StepEvent{})
	hooks.OnHalt(context.Background(), &domain.HaltEvent{})
	hooks.OnError(context.Background(), &domain.ErrorEvent{})
	hooks.OnProgramLoaded(context.Background(), &domain.ProgramEvent{})

	assert.Equal(t, []string{"first", "second", "halt"}, order)
}
