/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
)

// tracerKey keys a Tracer[T] in a context, one slot per result type.
type tracerKey[T any] struct{}

// Tracer creates and records traces for a given result type.
type Tracer[T any] interface {
	// NewTrace starts a trace for the given prompt.
	NewTrace(ctx context.Context, prompt string) *Trace[T]
	// RecordTrace receives a completed trace.
	RecordTrace(trace *Trace[T])
}

// WithTracer returns a context carrying the given tracer.
func WithTracer[T any](ctx context.Context, tracer Tracer[T]) context.Context {
	return context.WithValue(ctx, tracerKey[T]{}, tracer)
}

// TracerFromContext returns the tracer from the context, falling back to the
// clog-backed default when none is set.
func TracerFromContext[T any](ctx context.Context) Tracer[T] {
	if tracer, ok := ctx.Value(tracerKey[T]{}).(Tracer[T]); ok {
		return tracer
	}
	return NewDefaultTracer[T](ctx)
}

// StartTrace starts a trace using the tracer carried by the context.
func StartTrace[T any](ctx context.Context, prompt string) *Trace[T] {
	tracer := TracerFromContext[T](ctx)
	return tracer.NewTrace(ctx, prompt)
}
