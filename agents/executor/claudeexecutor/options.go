/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package claudeexecutor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deepset-ai/dap-github-agent-template/agents/metrics"
	"github.com/deepset-ai/dap-github-agent-template/agents/prompt"
	"github.com/deepset-ai/dap-github-agent-template/agents/retry"
)

// Option configures the executor.
type Option[Request prompt.Bindable, Response any] func(*executor[Request, Response]) error

// WithMaxTokens sets the maximum tokens per response.
func WithMaxTokens[Request prompt.Bindable, Response any](tokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		if tokens > 32000 {
			return fmt.Errorf("max tokens %d exceeds maximum of 32000", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithMaxTurns bounds the conversation length. A turn is one model response;
// tool results do not count. The default is 50.
func WithMaxTurns[Request prompt.Bindable, Response any](turns int) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if turns <= 0 {
			return fmt.Errorf("max turns must be positive, got %d", turns)
		}
		e.maxTurns = turns
		return nil
	}
}

// WithTemperature sets the sampling temperature, 0.0 to 1.0.
func WithTemperature[Request prompt.Bindable, Response any](temp float64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithSystemInstructions sets the system prompt.
func WithSystemInstructions[Request prompt.Bindable, Response any](p *prompt.Prompt) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if p == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = p
		return nil
	}
}

// WithModel overrides the model name.
func WithModel[Request prompt.Bindable, Response any](model string) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		e.modelName = model
		return nil
	}
}

// WithThinking enables extended thinking with the given token budget. The
// budget must be at least 1024 and strictly less than max tokens.
func WithThinking[Request prompt.Bindable, Response any](budgetTokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if budgetTokens < 1024 {
			return fmt.Errorf("thinking budget must be at least 1024 tokens, got %d", budgetTokens)
		}
		if budgetTokens >= e.maxTokens {
			return fmt.Errorf("thinking budget (%d) must be less than max tokens (%d)", budgetTokens, e.maxTokens)
		}
		e.thinkingBudgetTokens = &budgetTokens
		return nil
	}
}

// WithAttributeEnricher adds application context to usage metrics, for
// example the repository and issue the conversation serves.
func WithAttributeEnricher[Request prompt.Bindable, Response any](enricher metrics.AttributeEnricher) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		e.genaiMetrics.SetAttributeEnricher(enricher)
		return nil
	}
}

// WithRetryConfig sets the retry budget for transient Claude API errors,
// notably 429 rate limits and 529 overloads.
func WithRetryConfig[Request prompt.Bindable, Response any](cfg retry.Config) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
