package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestConfigure_EmptyConfigIsNoop(t *testing.T) {
	tracer, metrics := Configure(Config{})
	if tracer == nil || metrics == nil {
		t.Fatal("Configure returned nil instrumentation")
	}

	ctx, span := tracer.StartBuild(context.Background(), ClauseAttr(AttrHasFilter, true))
	span.End()

	metrics.RecordBuild(ctx, time.Millisecond, nil)
	metrics.RecordBuild(ctx, time.Millisecond, errors.New("boom"))
}

func TestConfigure_UsesProvidedProviders(t *testing.T) {
	tracer, metrics := Configure(Config{
		TracerProvider: tracenoop.NewTracerProvider(),
		MeterProvider:  metricnoop.NewMeterProvider(),
	})

	ctx, span := tracer.StartBuild(context.Background())
	tracer.SetError(ctx, errors.New("boom"))
	span.End()

	metrics.RecordBuild(ctx, time.Millisecond, errors.New("boom"))
}

func TestAttributeHelpers(t *testing.T) {
	kv := ClauseAttr(AttrHasTop, true)
	if kv.Key != attribute.Key(AttrHasTop) || !kv.Value.AsBool() {
		t.Errorf("unexpected clause attribute: %v", kv)
	}

	lengthAttr := QueryLengthAttr(42)
	if lengthAttr.Value.AsInt64() != 42 {
		t.Errorf("unexpected length attribute: %v", lengthAttr)
	}
}
