/*
Package observability turns engine lifecycle hooks into metrics and structured logs.

Metrics exports Prometheus counters for steps, halts, errors and loaded programs,
plus a histogram of cycles per halted run. LogHooks mirrors the same events into
a slog.Logger. Combine fans one event out to several hook sets:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.Combine(metrics.Hooks(), observability.LogHooks(logger))
	m := turing.New(driver, turing.WithLifecycleHooks(hooks))
*/
package observability
