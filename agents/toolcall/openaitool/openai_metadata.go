/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package openaitool

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

// Metadata describes a tool available to the OpenAI agent.
type Metadata[Response any] struct {
	// Definition is the OpenAI chat completions tool definition.
	Definition openai.ChatCompletionToolParam

	// Handler is the function that processes tool calls.
	// It receives the context, tool call, trace, and a result pointer.
	// If the handler sets *result to a non-zero value, the executor will immediately exit with that response.
	Handler func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// FromTool converts a provider-independent tool definition into OpenAI
// metadata. The returned handler parses the tool call's JSON arguments and
// delegates to the tool's handler.
func FromTool[Resp any](tool toolcall.Tool[Resp]) Metadata[Resp] {
	properties := make(map[string]any, len(tool.Def.Parameters))
	var required []string
	for _, p := range tool.Def.Parameters {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	parameters := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		parameters["required"] = required
	}

	return Metadata[Resp]{
		Definition: openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        tool.Def.Name,
				Description: openai.String(tool.Def.Description),
				Parameters:  shared.FunctionParameters(parameters),
			},
		},
		Handler: func(ctx context.Context, call openai.ChatCompletionMessageToolCall, trace *agenttrace.Trace[Resp], result *Resp) map[string]any {
			args := map[string]any{}
			if call.Function.Arguments != "" {
				if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
					trace.BadToolCall(call.ID, call.Function.Name, map[string]any{"arguments": call.Function.Arguments}, errors.New("failed to parse arguments"))
					return Error("Failed to parse tool arguments: %v", err)
				}
			}

			tc := toolcall.ToolCall{
				ID:   call.ID,
				Name: call.Function.Name,
				Args: args,
			}
			return tool.Handler(ctx, tc, trace, result)
		},
	}
}

// FromTools converts a map of provider-independent tools into OpenAI metadata.
func FromTools[Resp any](tools map[string]toolcall.Tool[Resp]) map[string]Metadata[Resp] {
	out := make(map[string]Metadata[Resp], len(tools))
	for name, tool := range tools {
		out[name] = FromTool(tool)
	}
	return out
}
