package observability

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the observability configuration for query building.
type Config struct {
	// TracerProvider is the OpenTelemetry tracer provider.
	// If nil, a no-op tracer is used.
	TracerProvider trace.TracerProvider

	// MeterProvider is the OpenTelemetry meter provider.
	// If nil, no-op instruments are used.
	MeterProvider metric.MeterProvider
}

// Configure builds the tracer and metrics described by cfg, substituting
// no-op implementations for absent providers.
func Configure(cfg Config) (*Tracer, *Metrics) {
	tracer := NewNoopTracer()
	if cfg.TracerProvider != nil {
		tracer = NewTracer(cfg.TracerProvider)
	}
	metrics := NewNoopMetrics()
	if cfg.MeterProvider != nil {
		metrics = NewMetrics(cfg.MeterProvider)
	}
	return tracer, metrics
}
