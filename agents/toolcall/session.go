/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall/callbacks"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall/params"
)

// sessionToolsProvider implements ToolProvider for repository editing tools.
type sessionToolsProvider[Resp any] struct{}

var _ ToolProvider[any, callbacks.SessionCallbacks] = sessionToolsProvider[any]{}

// NewSessionToolsProvider creates a ToolProvider exposing the repository
// browsing and editing tools backed by callbacks.SessionCallbacks.
func NewSessionToolsProvider[Resp any]() ToolProvider[Resp, callbacks.SessionCallbacks] {
	return sessionToolsProvider[Resp]{}
}

const (
	viewRepositoryDescription = `View repository structure or file contents on the working branch.

Pass a directory path to list its entries, or a file path to view its
content. An empty path lists the repository root.

Examples:
- "" lists the repository root
- "src" lists the contents of the src directory
- "src/main.py" shows the content of that file

Always view a file before editing it: edits must match the current file
content exactly.`

	fileEditorDescription = `Create, edit, or delete files on the working branch. Every change is
committed immediately with the provided message.

Commands:
- "create": add a new file. Requires path, content, and message.
- "edit": replace an exact string match. Requires path, original,
  replacement, and message. The original text must appear exactly once
  in the file and must span at least 2 lines; include surrounding
  lines to make short snippets unique.
- "delete": remove a file. Requires path and message.
- "undo": revert the most recent change that has not been undone.

Commit messages should follow the conventional commit format, for
example "fix: correct off-by-one in pagination".`

	createPRDescription = `Create a pull request from the working branch to the default branch.

Call this exactly once, after all edits are complete. The title should
follow the conventional commit format and summarize the change; the
body should explain what was changed and why, referencing the issue.

Examples of VALID titles:
- "fix: handle empty responses in retriever"
- "docs: document the new indexing pipeline"

No more edits are possible after this call; use file_editor first if
anything still needs to change.`
)

func (sessionToolsProvider[Resp]) Tools(cb callbacks.SessionCallbacks) map[string]Tool[Resp] {
	tools := map[string]Tool[Resp]{
		"view_repository": viewRepositoryTool[Resp](cb.ViewPath),
		"file_editor":     fileEditorTool[Resp](cb),
	}
	if cb.HasOpenPullRequest() {
		tools["create_pr"] = createPRTool[Resp](cb.OpenPullRequest)
	}
	return tools
}

func viewRepositoryTool[Resp any](viewFn func(context.Context, string) (string, error)) Tool[Resp] {
	return Tool[Resp]{
		Def: Definition{
			Name:        "view_repository",
			Description: viewRepositoryDescription,
			Parameters: []Parameter{
				{Name: "path", Type: "string", Description: "Directory or file path relative to the repository root; empty for the root", Required: false},
			},
		},
		Handler: func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
			log := clog.FromContext(ctx)

			path, errResp := OptionalParam[string](call, "path", "")
			if errResp != nil {
				return errResp
			}

			tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"path": path})

			content, err := viewFn(ctx, path)
			if err != nil {
				log.With("error", err).Error("Failed to view path")
				result := params.ErrorWithContext(err, map[string]any{"path": path})
				tc.Complete(result, err)
				return result
			}

			result := map[string]any{"content": content}
			tc.Complete(result, nil)
			return result
		},
	}
}

func fileEditorTool[Resp any](cb callbacks.SessionCallbacks) Tool[Resp] {
	return Tool[Resp]{
		Def: Definition{
			Name:        "file_editor",
			Description: fileEditorDescription,
			Parameters: []Parameter{
				{Name: "command", Type: "string", Description: `One of "create", "edit", "delete", or "undo"`, Required: true},
				{Name: "path", Type: "string", Description: "File path relative to the repository root (all commands except undo)", Required: false},
				{Name: "original", Type: "string", Description: "Exact text to replace, at least 2 lines (edit only)", Required: false},
				{Name: "replacement", Type: "string", Description: "Text to replace the original with; empty removes it (edit only)", Required: false},
				{Name: "content", Type: "string", Description: "Content for the new file (create only)", Required: false},
				{Name: "message", Type: "string", Description: "Commit message in conventional commit format (all commands except undo)", Required: false},
			},
		},
		Handler: func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
			command, errResp := Param[string](call, trace, "command")
			if errResp != nil {
				return errResp
			}

			switch command {
			case "create":
				return editorCreate(ctx, call, trace, cb.CreateFile)
			case "edit":
				return editorEdit(ctx, call, trace, cb.EditFile)
			case "delete":
				return editorDelete(ctx, call, trace, cb.DeleteFile)
			case "undo":
				return editorUndo(ctx, call, trace, cb.UndoLast)
			default:
				tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"command": command})
				err := fmt.Errorf("unknown command %q: expected \"create\", \"edit\", \"delete\", or \"undo\"", command)
				result := params.Error("%s", err)
				tc.Complete(result, err)
				return result
			}
		},
	}
}

func editorCreate[Resp any](ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], createFn func(context.Context, string, string, string) error) map[string]any {
	log := clog.FromContext(ctx)

	path, errResp := Param[string](call, trace, "path")
	if errResp != nil {
		return errResp
	}
	content, errResp := Param[string](call, trace, "content")
	if errResp != nil {
		return errResp
	}
	message, errResp := Param[string](call, trace, "message")
	if errResp != nil {
		return errResp
	}

	tc := trace.StartToolCall(call.ID, call.Name, map[string]any{
		"command":        "create",
		"path":           path,
		"content_length": len(content),
		"message":        message,
	})

	if err := createFn(ctx, path, content, message); err != nil {
		log.With("error", err).Error("Failed to create file")
		result := params.ErrorWithContext(err, map[string]any{"path": path})
		tc.Complete(result, err)
		return result
	}

	result := map[string]any{
		"success": true,
		"message": "File created successfully",
		"path":    path,
	}
	tc.Complete(result, nil)
	return result
}

func editorEdit[Resp any](ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], editFn func(context.Context, string, string, string, string) error) map[string]any {
	log := clog.FromContext(ctx)

	path, errResp := Param[string](call, trace, "path")
	if errResp != nil {
		return errResp
	}
	original, errResp := Param[string](call, trace, "original")
	if errResp != nil {
		return errResp
	}
	replacement, errResp := OptionalParam[string](call, "replacement", "")
	if errResp != nil {
		return errResp
	}
	message, errResp := Param[string](call, trace, "message")
	if errResp != nil {
		return errResp
	}

	tc := trace.StartToolCall(call.ID, call.Name, map[string]any{
		"command":            "edit",
		"path":               path,
		"original_length":    len(original),
		"replacement_length": len(replacement),
		"message":            message,
	})

	if err := editFn(ctx, path, original, replacement, message); err != nil {
		log.With("error", err).Error("Failed to edit file")
		result := params.ErrorWithContext(err, map[string]any{"path": path})
		tc.Complete(result, err)
		return result
	}

	result := map[string]any{
		"success": true,
		"message": "Edit successful",
		"path":    path,
	}
	tc.Complete(result, nil)
	return result
}

func editorDelete[Resp any](ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], deleteFn func(context.Context, string, string) error) map[string]any {
	log := clog.FromContext(ctx)

	path, errResp := Param[string](call, trace, "path")
	if errResp != nil {
		return errResp
	}
	message, errResp := Param[string](call, trace, "message")
	if errResp != nil {
		return errResp
	}

	tc := trace.StartToolCall(call.ID, call.Name, map[string]any{
		"command": "delete",
		"path":    path,
		"message": message,
	})

	if err := deleteFn(ctx, path, message); err != nil {
		log.With("error", err).Error("Failed to delete file")
		result := params.ErrorWithContext(err, map[string]any{"path": path})
		tc.Complete(result, err)
		return result
	}

	result := map[string]any{
		"success": true,
		"message": "File deleted successfully",
		"path":    path,
	}
	tc.Complete(result, nil)
	return result
}

func editorUndo[Resp any](ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], undoFn func(context.Context) error) map[string]any {
	log := clog.FromContext(ctx)

	tc := trace.StartToolCall(call.ID, call.Name, map[string]any{"command": "undo"})

	if err := undoFn(ctx); err != nil {
		log.With("error", err).Error("Failed to undo last change")
		result := params.Error("%s", err)
		tc.Complete(result, err)
		return result
	}

	result := map[string]any{
		"success": true,
		"message": "Successfully undid last change",
	}
	tc.Complete(result, nil)
	return result
}

func createPRTool[Resp any](openFn func(context.Context, string, string) (*callbacks.PullRequest, error)) Tool[Resp] {
	return Tool[Resp]{
		Def: Definition{
			Name:        "create_pr",
			Description: createPRDescription,
			Parameters: []Parameter{
				{Name: "title", Type: "string", Description: "Pull request title in conventional commit format", Required: true},
				{Name: "body", Type: "string", Description: "Pull request body describing the change and referencing the issue", Required: false},
			},
		},
		Handler: func(ctx context.Context, call ToolCall, trace *agenttrace.Trace[Resp], _ *Resp) map[string]any {
			log := clog.FromContext(ctx)

			title, errResp := Param[string](call, trace, "title")
			if errResp != nil {
				return errResp
			}
			body, errResp := OptionalParam[string](call, "body", "")
			if errResp != nil {
				return errResp
			}

			tc := trace.StartToolCall(call.ID, call.Name, map[string]any{
				"title":       title,
				"body_length": len(body),
			})

			pr, err := openFn(ctx, title, body)
			if err != nil {
				log.With("error", err).Error("Failed to create pull request")
				result := params.ErrorWithContext(err, map[string]any{"title": title})
				tc.Complete(result, err)
				return result
			}

			result := map[string]any{
				"success": true,
				"message": "Pull request created",
				"url":     pr.URL,
				"number":  pr.Number,
				"state":   pr.State,
			}
			tc.Complete(result, nil)
			return result
		},
	}
}
