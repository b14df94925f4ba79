package observability

import (
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// NewNoopTracer creates a tracer that does nothing.
func NewNoopTracer() *Tracer {
	return &Tracer{tracer: tracenoop.NewTracerProvider().Tracer("")}
}

// NewNoopMetrics creates metrics that do nothing.
func NewNoopMetrics() *Metrics {
	meter := noop.NewMeterProvider().Meter("")
	m := &Metrics{}

	// Note: noop meter never returns errors, but we must check them to satisfy the linter.
	m.buildDuration, _ = meter.Float64Histogram("odataquery.build.duration") //nolint:errcheck
	m.buildCount, _ = meter.Int64Counter("odataquery.build.count")           //nolint:errcheck
	m.errorCount, _ = meter.Int64Counter("odataquery.error.count")           //nolint:errcheck

	return m
}
