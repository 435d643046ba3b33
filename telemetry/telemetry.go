// Package telemetry provides the latency observation hook for access
// layer operations. Observation is a pure side channel: the default
// observer does nothing, and no observer may alter an operation's
// outcome.
package telemetry

import (
	"context"
	"time"
)

// =============================================================================
// Event
// =============================================================================

// Event describes one completed access layer call.
type Event struct {
	Module   string        `json:"module"`
	Method   string        `json:"method"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
}

// =============================================================================
// Observer Interface
// =============================================================================

// Observer receives call latency events. Implementations must be
// non-blocking; a slow observer delays the caller.
type Observer interface {
	Observe(ctx context.Context, event Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event Event)

// Observe calls f.
func (f ObserverFunc) Observe(ctx context.Context, event Event) { f(ctx, event) }

type noopObserver struct{}

func (noopObserver) Observe(context.Context, Event) {}

// Noop returns the observer that discards every event.
func Noop() Observer { return noopObserver{} }

// =============================================================================
// Context Injection
// =============================================================================

type contextKey string

const observerKey contextKey = "lineage.telemetry"

// WithObserver adds an Observer to the context.
func WithObserver(ctx context.Context, o Observer) context.Context {
	return context.WithValue(ctx, observerKey, o)
}

// FromContext extracts the Observer from context, Noop when absent.
func FromContext(ctx context.Context) Observer {
	if o, ok := ctx.Value(observerKey).(Observer); ok && o != nil {
		return o
	}
	return Noop()
}

// Emit delivers event to the observer in ctx. A panicking observer is
// swallowed so instrumentation can never fail an operation.
func Emit(ctx context.Context, event Event) {
	defer func() {
		_ = recover()
	}()
	FromContext(ctx).Observe(ctx, event)
}
