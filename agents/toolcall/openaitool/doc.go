/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package openaitool adapts provider-independent tool definitions to the
OpenAI chat completions SDK.

FromTool converts a toolcall.Tool into an openai.ChatCompletionToolParam
schema plus a handler that parses the tool call's JSON arguments and
delegates to the tool's provider-independent handler.

# Converting tools

Most agents define their tools once with the toolcall package and convert
the whole surface:

	provider := toolcall.NewSessionToolsProvider[*Result]()
	tools := openaitool.FromTools(provider.Tools(cb))

	// Register the definitions with the API request:
	defs := make([]openai.ChatCompletionToolParam, 0, len(tools))
	for _, meta := range tools {
		defs = append(defs, meta.Definition)
	}

	// Dispatch response tool calls to the converted handlers:
	for _, call := range choice.Message.ToolCalls {
		if meta, ok := tools[call.Function.Name]; ok {
			response := meta.Handler(ctx, call, trace, &result)
			content, _ := json.Marshal(response)
			messages = append(messages, openai.ToolMessage(string(content), call.ID))
		}
	}

Unlike the Anthropic and Gemini SDKs, OpenAI delivers tool arguments as a
JSON string in call.Function.Arguments; the converted handler parses it
before delegating. If a handler sets *result to a non-zero value, the agent
loop exits with that response.

# Error handling

Error responses are plain maps with an "error" key, marshaled into the tool
message content:

	return openaitool.Error("File not found: %s", path)

	return openaitool.ErrorWithContext(err, map[string]any{
		"path":    path,
		"command": command,
	})
*/
package openaitool
