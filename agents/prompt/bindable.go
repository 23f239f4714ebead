/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package prompt

// Bindable binds request-specific values into a Prompt. Agent harnesses
// accept request types implementing this interface so the same template
// can serve different work items.
type Bindable interface {
	// Bind returns a new prompt with the receiver's values bound.
	Bind(prompt *Prompt) (*Prompt, error)
}

// Noop passes the prompt through unchanged. Embed it in request types
// that have nothing to bind.
type Noop struct{}

// Bind implements Bindable.
func (Noop) Bind(prompt *Prompt) (*Prompt, error) {
	return prompt, nil
}
