package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/turing/pkg/domain"
)

// Namespace prefixes every metric name.
const Namespace = "turing"

// Metrics holds the Prometheus collectors fed by engine hooks.
type Metrics struct {
	Steps          prometheus.Counter
	Halts          prometheus.Counter
	Errors         *prometheus.CounterVec
	ProgramsLoaded prometheus.Counter
	RunCycles      prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "steps_total",
			Help:      "Total number of transitions applied",
		}),
		Halts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "halts_total",
			Help:      "Total number of machines that reached a halting state",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of failed steps by error kind",
		}, []string{"kind"}),
		ProgramsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "programs_loaded_total",
			Help:      "Total number of programs loaded into an engine",
		}),
		RunCycles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_cycles",
			Help:      "Cycles applied before a machine halted",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Steps, m.Halts, m.Errors, m.ProgramsLoaded, m.RunCycles)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnProgramLoaded: func(context.Context, *domain.ProgramEvent) {
			m.ProgramsLoaded.Inc()
		},
		OnStep: func(context.Context, *domain.StepEvent) {
			m.Steps.Inc()
		},
		OnHalt: func(_ context.Context, e *domain.HaltEvent) {
			m.Halts.Inc()
			m.RunCycles.Observe(float64(e.Cycle))
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(e.Kind).Inc()
		},
	}
}
