/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"context"

	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall"
	"google.golang.org/genai"
)

// FromTool converts a provider-independent tool definition into Google AI
// metadata. The returned handler wraps the tool's response map in a
// genai.FunctionResponse carrying the call's ID, so the response is never
// nil even when the tool handler returns nothing.
func FromTool[Resp any](tool toolcall.Tool[Resp]) Metadata[Resp] {
	properties := make(map[string]*genai.Schema, len(tool.Def.Parameters))
	var required []string
	for _, p := range tool.Def.Parameters {
		properties[p.Name] = &genai.Schema{
			Type:        genai.Type(p.Type),
			Description: p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return Metadata[Resp]{
		Definition: &genai.FunctionDeclaration{
			Name:        tool.Def.Name,
			Description: tool.Def.Description,
			Parameters: &genai.Schema{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
		Handler: func(ctx context.Context, call *genai.FunctionCall, trace *agenttrace.Trace[Resp], result *Resp) *genai.FunctionResponse {
			tc := toolcall.ToolCall{
				ID:   call.ID,
				Name: call.Name,
				Args: call.Args,
			}

			response := tool.Handler(ctx, tc, trace, result)
			if response == nil {
				response = map[string]any{}
			}
			return &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: response,
			}
		},
	}
}

// FromTools converts a map of provider-independent tools into Google AI metadata.
func FromTools[Resp any](tools map[string]toolcall.Tool[Resp]) map[string]Metadata[Resp] {
	out := make(map[string]Metadata[Resp], len(tools))
	for name, tool := range tools {
		out[name] = FromTool(tool)
	}
	return out
}
