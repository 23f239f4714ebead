/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records OpenTelemetry counters for model usage: prompt and
// completion tokens, and tool invocations. One meter serves every executor;
// the model name is a dimension on each counter.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI holds the counters for one meter. A counter that fails to initialize
// degrades to a no-op rather than failing the executor.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	toolCalls        metric.Int64Counter
	enricher         AttributeEnricher
}

// NewGenAI creates the counters under the named meter.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt token counter", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion token counter", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	toolCalls, err := meter.Int64Counter("genai.tool.calls",
		metric.WithDescription("The number of tool calls made during execution"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create tool call counter", "error", err, "meter", meterName)
		toolCalls = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		toolCalls:        toolCalls,
	}
}

// SetAttributeEnricher installs an enricher that runs before every record.
func (m *GenAI) SetAttributeEnricher(enricher AttributeEnricher) {
	m.enricher = enricher
}

// RecordTokens adds prompt and completion token counts for one model turn.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String("model", model)}
	if m.enricher != nil {
		base = m.enricher(ctx, base)
	}
	base = append(base, attrs...)

	m.promptTokens.Add(ctx, promptTokens, metric.WithAttributes(base...))
	m.completionTokens.Add(ctx, completionTokens, metric.WithAttributes(base...))
}

// RecordToolCall counts one tool invocation.
func (m *GenAI) RecordToolCall(ctx context.Context, model, toolName string, attrs ...attribute.KeyValue) {
	base := []attribute.KeyValue{
		attribute.String("model", model),
		attribute.String("tool", toolName),
	}
	if m.enricher != nil {
		base = m.enricher(ctx, base)
	}
	base = append(base, attrs...)

	m.toolCalls.Add(ctx, 1, metric.WithAttributes(base...))
}
