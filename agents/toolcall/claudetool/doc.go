/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package claudetool adapts provider-independent tool definitions to the
Anthropic Claude SDK.

The package has two layers. FromTool converts a toolcall.Tool into the
anthropic.ToolParam schema plus a handler that parses tool use input and
delegates to the tool's provider-independent handler. The parameter helpers
(NewParams, Param, OptionalParam) support hand-written handlers that work
directly on anthropic.ToolUseBlock.

# Converting tools

Most agents define their tools once with the toolcall package and convert
the whole surface:

	provider := toolcall.NewSessionToolsProvider[*Result]()
	tools := claudetool.FromTools(provider.Tools(cb))

	// Register the definitions with the API request:
	defs := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, meta := range tools {
		defs = append(defs, anthropic.ToolUnionParam{OfTool: &meta.Definition})
	}

	// Dispatch tool use blocks to the converted handlers:
	if meta, ok := tools[toolUse.Name]; ok {
		response := meta.Handler(ctx, toolUse, trace, &result)
		// send response back to the model
	}

If a handler sets *result to a non-zero value, the agent loop exits with
that response.

# Hand-written handlers

For handlers written directly against the SDK, the package provides
type-safe parameter extraction:

	func handleViewRepository(toolUse anthropic.ToolUseBlock) map[string]any {
		params, errResp := claudetool.NewParams(toolUse)
		if errResp != nil {
			return errResp
		}

		path, errResp := claudetool.Param[string](params, "path")
		if errResp != nil {
			return errResp
		}

		content, err := view(path)
		if err != nil {
			return claudetool.Error("Failed to view %s: %v", path, err)
		}

		return map[string]any{"content": content}
	}

# Parameter extraction

Param extracts required parameters; OptionalParam takes a default:

	path, errResp := claudetool.Param[string](params, "path")
	limit, errResp := claudetool.OptionalParam(params, "limit", 100)

JSON numbers arrive as float64; both helpers convert to int, int32, and
int64 transparently.

# Error handling

Error responses are plain maps with an "error" key, the shape Claude
expects back from a failed tool call:

	return claudetool.Error("File not found: %s", path)

	return claudetool.ErrorWithContext(err, map[string]any{
		"path":    path,
		"command": command,
	})

All functions in this package are safe for concurrent use. The Params type
is immutable after creation.
*/
package claudetool
