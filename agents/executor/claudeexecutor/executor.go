/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/deepset-ai/dap-github-agent-template/agents/agenttrace"
	"github.com/deepset-ai/dap-github-agent-template/agents/metrics"
	"github.com/deepset-ai/dap-github-agent-template/agents/prompt"
	"github.com/deepset-ai/dap-github-agent-template/agents/result"
	"github.com/deepset-ai/dap-github-agent-template/agents/retry"
	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall/claudetool"
)

// Interface runs an agent conversation against Claude.
type Interface[Request prompt.Bindable, Response any] interface {
	// Execute binds the request into the prompt and runs the conversation
	// until a tool sets the result, the model answers in text, or the turn
	// budget is spent. Seed tool calls are executed before the first model
	// turn and their results prepended to the conversation.
	Execute(ctx context.Context, request Request, tools map[string]claudetool.Metadata[Response], seedToolCalls ...anthropic.ToolUseBlock) (Response, error)
}

type executor[Request prompt.Bindable, Response any] struct {
	client               anthropic.Client
	modelName            string
	systemInstructions   *prompt.Prompt
	prompt               *prompt.Prompt
	maxTokens            int64
	maxTurns             int
	temperature          float64
	thinkingBudgetTokens *int64 // nil = disabled
	genaiMetrics         *metrics.GenAI
	retryConfig          retry.Config
}

// New creates an executor for the given client and prompt template.
func New[Request prompt.Bindable, Response any](
	client anthropic.Client,
	p *prompt.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if p == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor[Request, Response]{
		client:       client,
		modelName:    "claude-sonnet-4-5",
		prompt:       p,
		maxTokens:    8192,
		maxTurns:     50,
		temperature:  0.1,
		genaiMetrics: metrics.NewGenAI("deepset.ai.agents"),
		retryConfig:  retry.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	return e, nil
}

func (e *executor[Request, Response]) Execute(
	ctx context.Context,
	request Request,
	tools map[string]claudetool.Metadata[Response],
	seedToolCalls ...anthropic.ToolUseBlock,
) (response Response, err error) {
	log := clog.FromContext(ctx)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("binding request to prompt: %w", err)
	}
	rendered, err := bound.Build()
	if err != nil {
		return response, fmt.Errorf("building prompt: %w", err)
	}

	trace := agenttrace.StartTrace[Response](ctx, rendered)
	defer func() {
		trace.Complete(response, err)
	}()

	log.With("prompt_length", len(rendered)).Info("Starting Claude agent execution")

	toolDefs := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, meta := range tools {
		toolDefs = append(toolDefs, anthropic.ToolUnionParam{
			OfTool: &meta.Definition,
		})
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(rendered),
			},
		}},
		Tools: toolDefs,
	}

	params.Temperature = anthropic.Float(e.temperature)
	// The API requires temperature 1.0 when extended thinking is on.
	if e.thinkingBudgetTokens != nil {
		params.Temperature = anthropic.Float(1.0)
		params.Thinking = anthropic.ThinkingConfigParamUnion{
			OfEnabled: &anthropic.ThinkingConfigEnabledParam{
				BudgetTokens: *e.thinkingBudgetTokens,
			},
		}
	}

	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	// finalResult captures a result set by a tool handler; a non-zero value
	// ends the conversation immediately.
	var finalResult Response
	finalResultPtr := &finalResult

	executeToolCall := func(toolUse anthropic.ToolUseBlock) (anthropic.ContentBlockParamUnion, error) {
		log.With("tool", toolUse.Name).With("id", toolUse.ID).Info("Executing tool call")

		var res map[string]any
		if meta, ok := tools[toolUse.Name]; ok {
			res = meta.Handler(ctx, toolUse, trace, finalResultPtr)
		} else {
			log.With("tool", toolUse.Name).Error("Unknown tool requested")
			trace.BadToolCall(toolUse.ID, toolUse.Name,
				map[string]any{"input": toolUse.Input},
				fmt.Errorf("unknown tool: %q", toolUse.Name))
			res = map[string]any{
				"error": fmt.Sprintf("unknown tool: %q", toolUse.Name),
			}
		}

		resultBytes, err := json.Marshal(res)
		if err != nil {
			return anthropic.ContentBlockParamUnion{}, fmt.Errorf("marshaling tool result: %w", err)
		}
		return anthropic.ContentBlockParamUnion{
			OfToolResult: &anthropic.ToolResultBlockParam{
				ToolUseID: toolUse.ID,
				Content: []anthropic.ToolResultBlockParamContentUnion{{
					OfText: &anthropic.TextBlockParam{
						Text: string(resultBytes),
					},
				}},
			},
		}, nil
	}

	for _, toolCall := range seedToolCalls {
		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role: anthropic.MessageParamRoleAssistant,
			Content: []anthropic.ContentBlockParamUnion{{
				OfToolUse: &anthropic.ToolUseBlockParam{
					ID:    toolCall.ID,
					Name:  toolCall.Name,
					Input: toolCall.Input,
				},
			}},
		})

		res, err := executeToolCall(toolCall)
		if err != nil {
			return response, err
		}
		if !reflect.ValueOf(finalResult).IsZero() {
			log.Info("Seed tool set final result, exiting immediately")
			return finalResult, nil
		}

		params.Messages = append(params.Messages, anthropic.MessageParam{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{res},
		})
	}

	for turn := 0; turn < e.maxTurns; turn++ {
		message, err := retry.WithBackoff(ctx, e.retryConfig, "stream_message", isRetryableClaudeError, func() (anthropic.Message, error) {
			stream := e.client.Messages.NewStreaming(ctx, params)
			var msg anthropic.Message
			for stream.Next() {
				event := stream.Current()
				if err := msg.Accumulate(event); err != nil {
					return msg, fmt.Errorf("accumulating event: %w", err)
				}
			}
			if err := stream.Err(); err != nil {
				return msg, err
			}
			return msg, nil
		})
		if err != nil {
			return response, fmt.Errorf("streaming Claude response: %w", err)
		}

		if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
			trace.RecordTokenUsage(e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
		}

		var toolUseBlocks []anthropic.ToolUseBlock
		var textContent string
		for _, content := range message.Content {
			switch content.Type {
			case "text":
				textContent = content.Text
			case "tool_use":
				toolUseBlocks = append(toolUseBlocks, anthropic.ToolUseBlock{
					ID:    content.ID,
					Name:  content.Name,
					Input: content.Input,
				})
			case "thinking", "redacted_thinking":
				trace.Reasoning = append(trace.Reasoning, agenttrace.ReasoningContent{
					Thinking: content.Thinking,
				})
			}
		}

		if len(toolUseBlocks) > 0 {
			params.Messages = append(params.Messages, message.ToParam())

			var toolResults []anthropic.ContentBlockParamUnion
			for _, toolUse := range toolUseBlocks {
				e.genaiMetrics.RecordToolCall(ctx, e.modelName, toolUse.Name)

				res, err := executeToolCall(toolUse)
				if err != nil {
					return response, err
				}
				toolResults = append(toolResults, res)

				if !reflect.ValueOf(finalResult).IsZero() {
					log.Info("Tool set final result, exiting conversation loop")
					return finalResult, nil
				}
			}

			params.Messages = append(params.Messages, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleUser,
				Content: toolResults,
			})
			continue
		}

		if textContent != "" {
			resp, err := result.Extract[Response](textContent)
			if err != nil {
				log.With("response", textContent).
					With("error", err).
					Error("Failed to parse Claude response")
				return response, fmt.Errorf("parsing response: %w", err)
			}
			log.Info("Completed Claude agent execution")
			return resp, nil
		}

		return response, errors.New("no content in Claude's response")
	}

	return response, fmt.Errorf("conversation exceeded %d turns without a result", e.maxTurns)
}
