/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package googletool adapts provider-independent tool definitions to the
Google Gemini SDK.

The package has two layers. FromTool converts a toolcall.Tool into a
genai.FunctionDeclaration plus a handler that wraps the tool's response map
in a genai.FunctionResponse. The parameter helpers (Param, OptionalParam)
support hand-written handlers that work directly on genai.FunctionCall.

# Converting tools

Most agents define their tools once with the toolcall package and convert
the whole surface:

	provider := toolcall.NewSessionToolsProvider[*Result]()
	tools := googletool.FromTools(provider.Tools(cb))

	// Register the declarations with the API request:
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, meta := range tools {
		decls = append(decls, meta.Definition)
	}

	// Dispatch function calls to the converted handlers:
	if meta, ok := tools[call.Name]; ok {
		response := meta.Handler(ctx, call, trace, &result)
		// send response back to the model
	}

The converted handler always returns a non-nil FunctionResponse carrying the
call's ID, as the Gemini API requires a response for every function call.
If a handler sets *result to a non-zero value, the agent loop exits with
that response.

# Hand-written handlers

For handlers written directly against the SDK, the package provides
type-safe parameter extraction:

	func handleViewRepository(call *genai.FunctionCall) *genai.FunctionResponse {
		path, errResp := googletool.Param[string](call, "path")
		if errResp != nil {
			return errResp
		}

		content, err := view(path)
		if err != nil {
			return googletool.Error(call, "Failed to view %s: %v", path, err)
		}

		return &genai.FunctionResponse{
			ID:   call.ID,
			Name: call.Name,
			Response: map[string]any{
				"content": content,
			},
		}
	}

# Parameter extraction

Param extracts required parameters; OptionalParam takes a default:

	path, errResp := googletool.Param[string](call, "path")
	limit, errResp := googletool.OptionalParam(call, "limit", 100)

JSON numbers arrive as float64; both helpers convert to int, int32, and
int64 transparently.

# Error handling

Error responses are FunctionResponse values carrying the call's ID and an
"error" key in the response map:

	return googletool.Error(call, "File not found: %s", path)

	return googletool.ErrorWithContext(call, err, map[string]any{
		"path":    path,
		"command": command,
	})

All functions in this package are safe for concurrent use as they operate
on immutable data and don't maintain any shared state.
*/
package googletool
