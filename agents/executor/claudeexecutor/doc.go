/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexecutor runs the agent conversation loop against Claude:
// prompt rendering, message streaming and accumulation, tool dispatch, and
// result extraction, with traces recorded through agenttrace.
//
// The conversation ends in one of three ways: a tool handler sets the typed
// result (the usual path for editing agents, whose create_pr tool carries the
// outcome), the model answers with JSON text that parses into the result
// type, or the turn budget runs out.
//
//	exec, err := claudeexecutor.New[*Request, *Response](
//	    client,
//	    promptTemplate,
//	    claudeexecutor.WithModel[*Request, *Response]("claude-sonnet-4-5"),
//	    claudeexecutor.WithSystemInstructions[*Request, *Response](system),
//	)
//	if err != nil {
//	    return err
//	}
//	response, err := exec.Execute(ctx, request, tools)
//
// Transient API errors (429, 503, 504, 529) are retried with exponential
// backoff; everything else fails the execution.
package claudeexecutor
