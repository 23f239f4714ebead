/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"fmt"
	"maps"
)

// stringLiteral only accepts untyped string constants, so templates and
// literal bindings can only come from source code, never from runtime data.
type stringLiteral string

// Prompt is an immutable template with {{name}} placeholders. Binding
// methods return a new Prompt; the receiver is never modified.
type Prompt struct {
	template string
	bindings map[string]binding
}

// New parses a template literal and registers a placeholder for every
// {{name}} it contains.
func New(template stringLiteral) (*Prompt, error) {
	bindings := make(map[string]binding)

	// Walking with an identity resolver validates every placeholder and
	// returns the template unchanged.
	tmpl, err := walkTemplate(string(template), func(name string) (string, error) {
		if _, exists := bindings[name]; !exists {
			bindings[name] = &unboundBinding{name: name}
		}
		return fmt.Sprintf("{{%s}}", name), nil
	})
	if err != nil {
		return nil, err
	}

	return &Prompt{
		template: tmpl,
		bindings: bindings,
	}, nil
}

// GetBindings returns the set of placeholder names found in the template.
func (p *Prompt) GetBindings() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindStringLiteral binds a literal string to a placeholder. Because the
// value must be a source-code literal it bypasses encoding; runtime data
// goes through BindJSON or BindYAML instead.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = &literalBinding{val: string(value)}
	return next, nil
}

// BindJSON binds arbitrary data to a placeholder, rendered as indented
// JSON when the prompt is built.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = &jsonBinding{data: data}
	return next, nil
}

// BindYAML binds arbitrary data to a placeholder, rendered as YAML when
// the prompt is built.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	if err := existsAndUnbound(p.bindings, name); err != nil {
		return nil, err
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = &yamlBinding{data: data}
	return next, nil
}

// Build renders the final prompt text. It fails if any placeholder is
// still unbound or a bound value cannot be marshaled.
func (p *Prompt) Build() (string, error) {
	// Resolve every binding up front so errors surface before any text
	// is assembled.
	values := make(map[string]string, len(p.bindings))
	for name, binding := range p.bindings {
		val, err := binding.value()
		if err != nil {
			return "", err
		}
		values[name] = val
	}

	return walkTemplate(p.template, func(name string) (string, error) {
		if val, exists := values[name]; exists {
			return val, nil
		}
		// Unreachable: New and Build tokenize with the same walker.
		return "", fmt.Errorf("internal error: binding %q not found in values map", name)
	})
}
