package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerObserver emits one span per access layer call.
type tracerObserver struct {
	tracer trace.Tracer
}

// Tracer returns an Observer that records each event as an OpenTelemetry
// span named "module.method", backdated to the call's start so span
// duration equals the measured wall-clock latency.
func Tracer(tracer trace.Tracer) Observer {
	return &tracerObserver{tracer: tracer}
}

func (t *tracerObserver) Observe(ctx context.Context, event Event) {
	_, span := t.tracer.Start(ctx, event.Module+"."+event.Method,
		trace.WithTimestamp(event.Start),
		trace.WithAttributes(
			attribute.String("lineage.module", event.Module),
			attribute.String("lineage.method", event.Method),
			attribute.Int64("lineage.duration_us", event.Duration.Microseconds()),
		),
	)
	span.End(trace.WithTimestamp(event.Start.Add(event.Duration)))
}
