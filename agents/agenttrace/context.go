/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// ExecutionContext carries session-level metadata for agent executions, used
// to enrich traces and metrics with the issue and branch being worked on.
type ExecutionContext struct {
	// SessionKey is the primary identifier, e.g. "issue:deepset-ai/haystack/42".
	SessionKey string `json:"session_key,omitempty"`

	// TriggerType names what started the session: "issue" or "manual".
	TriggerType string `json:"trigger_type,omitempty"`

	// BranchName is the working branch the session commits to.
	BranchName string `json:"branch_name,omitempty"`

	// TurnNumber is the agent turn for multi-turn runs (1, 2, 3, ...).
	TurnNumber int `json:"turn_number,omitempty"`
}

// Repository extracts "owner/repo" from the session key.
// For "issue:deepset-ai/haystack/42" it returns "deepset-ai/haystack";
// for anything malformed it returns "".
func (e ExecutionContext) Repository() string {
	if e.SessionKey == "" {
		return ""
	}

	_, identifier, found := strings.Cut(e.SessionKey, ":")
	if !found {
		return ""
	}

	firstSlash := strings.IndexByte(identifier, '/')
	if firstSlash == -1 {
		return ""
	}

	secondSlash := strings.IndexByte(identifier[firstSlash+1:], '/')
	if secondSlash == -1 {
		return ""
	}

	return identifier[:firstSlash+1+secondSlash]
}

// EnrichAttributes appends execution-context attributes to baseAttrs using
// only bounded labels.
//
// SessionKey and BranchName are deliberately excluded: every issue would mint
// a new time series. They remain on the ExecutionContext for traces, where
// cardinality does not matter.
func (e ExecutionContext) EnrichAttributes(baseAttrs []attribute.KeyValue) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, len(baseAttrs), len(baseAttrs)+3)
	copy(attrs, baseAttrs)

	if e.TriggerType != "" {
		attrs = append(attrs, attribute.String("trigger_type", e.TriggerType))
	}

	// Repository count is bounded in a way per-issue keys are not.
	if repo := e.Repository(); repo != "" {
		attrs = append(attrs, attribute.String("repository", repo))
	}

	attrs = append(attrs, attribute.Int("turn", e.TurnNumber))

	return attrs
}

// contextKey keys execution context entries in a context.Context.
type contextKey string

const executionContextKey contextKey = "execution_context"

// WithExecutionContext stores the execution context on the Go context.
func WithExecutionContext(ctx context.Context, execCtx ExecutionContext) context.Context {
	return context.WithValue(ctx, executionContextKey, execCtx)
}

// GetExecutionContext retrieves the execution context, or a zero value when
// none was set.
func GetExecutionContext(ctx context.Context) ExecutionContext {
	if val := ctx.Value(executionContextKey); val != nil {
		if execCtx, ok := val.(ExecutionContext); ok {
			return execCtx
		}
	}
	return ExecutionContext{}
}
