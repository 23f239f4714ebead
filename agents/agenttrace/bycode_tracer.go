/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TraceCallback receives completed traces.
type TraceCallback[T any] func(*Trace[T])

// byCodeTracer implements Tracer by fanning completed traces out to
// callback functions.
type byCodeTracer[T any] struct {
	callbacks []TraceCallback[T]
}

// ByCode builds a Tracer that invokes the given callbacks whenever a trace
// completes. Nil callbacks are skipped.
func ByCode[T any](callbacks ...TraceCallback[T]) Tracer[T] {
	return &byCodeTracer[T]{
		callbacks: callbacks,
	}
}

// NewTrace starts a trace bound to this tracer.
func (t *byCodeTracer[T]) NewTrace(ctx context.Context, prompt string) *Trace[T] {
	return newTraceWithTracer[T](ctx, t, prompt)
}

// RecordTrace runs all callbacks with the completed trace in parallel and
// waits for them to finish.
func (t *byCodeTracer[T]) RecordTrace(trace *Trace[T]) {
	g := new(errgroup.Group)

	for _, callback := range t.callbacks {
		if callback != nil {
			g.Go(func() error {
				callback(trace)
				return nil
			})
		}
	}

	// Callbacks never return errors.
	_ = g.Wait()
}
