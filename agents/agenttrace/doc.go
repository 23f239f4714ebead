/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package agenttrace provides tracing for AI agent executions.

# Overview

The foundational types for tracking what an agent did during a run:

  - ExecutionContext: session-level metadata (issue, branch, turn) for enrichment
  - Trace[T]: one complete interaction from prompt to result
  - ToolCall[T]: a single tool invocation within a trace
  - Tracer[T]: the recording interface, with ByCode and clog-backed defaults

Every trace and tool call also opens an OpenTelemetry span, so agent activity
shows up in whatever trace backend the process is wired to.

# Usage

Set execution context before running the agent:

	ctx = agenttrace.WithExecutionContext(ctx, agenttrace.ExecutionContext{
		SessionKey:  "issue:deepset-ai/haystack/42",
		TriggerType: "issue",
		BranchName:  "issue-42",
		TurnNumber:  1,
	})

Create and use traces:

	tracer := agenttrace.ByCode[string](func(trace *agenttrace.Trace[string]) {
		log.Printf("Trace completed: %s", trace.ID)
	})
	ctx = agenttrace.WithTracer[string](ctx, tracer)

	trace := agenttrace.StartTrace[string](ctx, "Fix the reported bug")
	toolCall := trace.StartToolCall("tc1", "view_repository", map[string]any{
		"path": "src/main.py",
	})
	toolCall.Complete("File content here", nil)
	trace.Complete("Done", nil)
*/
package agenttrace
