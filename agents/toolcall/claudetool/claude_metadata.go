/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package claudetool

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall"
)

// Metadata describes a tool available to the Claude agent.
type Metadata[Response any] struct {
	// Definition is the Claude tool definition.
	Definition anthropic.ToolParam

	// Handler is the function that processes tool calls.
	// It receives the context, tool use block, trace, and a result pointer.
	// If the handler sets *result to a non-zero value, the executor will immediately exit with that response.
	Handler func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Response], result *Response) map[string]any
}

// FromTool converts a provider-independent tool definition into Claude
// metadata. The returned handler parses the tool use input JSON and delegates
// to the tool's handler.
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

	return Metadata[Resp]{
		Definition: anthropic.ToolParam{
			Name:        tool.Def.Name,
			Description: anthropic.String(tool.Def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
		Handler: func(ctx context.Context, toolUse anthropic.ToolUseBlock, trace *agenttrace.Trace[Resp], result *Resp) map[string]any {
			cp, errResp := NewParams(toolUse)
			if errResp != nil {
				trace.BadToolCall(toolUse.ID, toolUse.Name, map[string]any{"input": string(toolUse.Input)}, errors.New("failed to parse params"))
				return errResp
			}

			call := toolcall.ToolCall{
				ID:   toolUse.ID,
				Name: toolUse.Name,
				Args: cp.RawInputs(),
			}
			return tool.Handler(ctx, call, trace, result)
		},
	}
}

// FromTools converts a map of provider-independent tools into Claude metadata.
func FromTools[Resp any](tools map[string]toolcall.Tool[Resp]) map[string]Metadata[Resp] {
	out := make(map[string]Metadata[Resp], len(tools))
	for name, tool := range tools {
		out[name] = FromTool(tool)
	}
	return out
}
