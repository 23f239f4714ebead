/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package googletool

import (
	"context"
	"testing"

	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall"
	"google.golang.org/genai"
)

func testTool() toolcall.Tool[string] {
	return toolcall.Tool[string]{
		Def: toolcall.Definition{
			Name:        "view_repository",
			Description: "View repository structure or file contents.",
			Parameters: []toolcall.Parameter{
				{Name: "path", Type: "string", Description: "Path to view", Required: true},
				{Name: "limit", Type: "integer", Description: "Maximum entries", Required: false},
			},
		},
		Handler: func(_ context.Context, call toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
			return map[string]any{"path": call.Args["path"]}
		},
	}
}

func TestFromToolDefinition(t *testing.T) {
	meta := FromTool(testTool())

	if meta.Definition.Name != "view_repository" {
		t.Errorf("got name %q, want %q", meta.Definition.Name, "view_repository")
	}
	if meta.Definition.Description != "View repository structure or file contents." {
		t.Errorf("unexpected description: %q", meta.Definition.Description)
	}

	props := meta.Definition.Parameters.Properties
	if len(props) != 2 {
		t.Errorf("got %d properties, want 2", len(props))
	}
	if props["path"] == nil || props["path"].Type != "string" {
		t.Errorf("unexpected path schema: %+v", props["path"])
	}

	required := meta.Definition.Parameters.Required
	if len(required) != 1 || required[0] != "path" {
		t.Errorf("got required %v, want [path]", required)
	}
}

func TestFromToolHandler(t *testing.T) {
	meta := FromTool(testTool())
	ctx := context.Background()
	trace := agenttrace.StartTrace[string](ctx, "test")

	call := &genai.FunctionCall{
		ID:   "call-1",
		Name: "view_repository",
		Args: map[string]any{"path": "src/main.py"},
	}

	resp := meta.Handler(ctx, call, trace, nil)
	if resp == nil {
		t.Fatal("expected non-nil response")
	}
	if resp.ID != "call-1" {
		t.Errorf("got ID %q, want %q", resp.ID, "call-1")
	}
	if resp.Name != "view_repository" {
		t.Errorf("got name %q, want %q", resp.Name, "view_repository")
	}
	if resp.Response["path"] != "src/main.py" {
		t.Errorf("got path %v, want src/main.py", resp.Response["path"])
	}
}

func TestFromToolHandlerNilResponse(t *testing.T) {
	tool := toolcall.Tool[string]{
		Def: toolcall.Definition{
			Name:        "noop",
			Description: "Does nothing",
			Parameters:  []toolcall.Parameter{},
		},
		Handler: func(_ context.Context, _ toolcall.ToolCall, _ *agenttrace.Trace[string], _ *string) map[string]any {
			return nil
		},
	}

	meta := FromTool(tool)
	ctx := context.Background()
	trace := agenttrace.StartTrace[string](ctx, "test")

	call := &genai.FunctionCall{ID: "call-2", Name: "noop"}

	resp := meta.Handler(ctx, call, trace, nil)
	if resp == nil {
		t.Fatal("expected non-nil response for nil handler result")
	}
	if resp.ID != "call-2" {
		t.Errorf("got ID %q, want %q", resp.ID, "call-2")
	}
	if resp.Response == nil {
		t.Error("expected non-nil response map")
	}
}

func TestFromTools(t *testing.T) {
	tools := map[string]toolcall.Tool[string]{
		"view_repository": testTool(),
	}

	metas := FromTools(tools)
	if len(metas) != 1 {
		t.Fatalf("got %d tools, want 1", len(metas))
	}
	if _, ok := metas["view_repository"]; !ok {
		t.Error("missing view_repository in converted tools")
	}
}
