package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the build-specific metric instruments.
type Metrics struct {
	buildDuration metric.Float64Histogram
	buildCount    metric.Int64Counter
	errorCount    metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with the given MeterProvider.
func NewMetrics(mp metric.MeterProvider) *Metrics {
	meter := mp.Meter(MeterName)
	m := &Metrics{}

	// Note: errors from meter instrument creation are unlikely in practice
	// and would only occur with invalid parameters. We use explicit checks
	// to satisfy the linter while continuing with partial metrics on error.
	var err error

	m.buildDuration, err = meter.Float64Histogram(
		"odataquery.build.duration",
		metric.WithDescription("Duration of query builds in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		m.buildDuration, _ = meter.Float64Histogram("odataquery.build.duration")
	}

	m.buildCount, err = meter.Int64Counter(
		"odataquery.build.count",
		metric.WithDescription("Total number of query builds"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		m.buildCount, _ = meter.Int64Counter("odataquery.build.count")
	}

	m.errorCount, err = meter.Int64Counter(
		"odataquery.error.count",
		metric.WithDescription("Total number of failed query builds"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		m.errorCount, _ = meter.Int64Counter("odataquery.error.count")
	}

	return m
}

// RecordBuild records one completed build attempt.
func (m *Metrics) RecordBuild(ctx context.Context, elapsed time.Duration, err error) {
	m.buildCount.Add(ctx, 1)
	m.buildDuration.Record(ctx, float64(elapsed.Microseconds())/1000.0)
	if err != nil {
		m.errorCount.Add(ctx, 1)
	}
}
