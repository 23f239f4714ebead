/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package prompt

// Panic-on-error helpers for package-level template variables, where an
// invalid template is a programming error caught at init.

// Must wraps a call returning (*Prompt, error) and panics if the error is
// non-nil:
//
//	var p = prompt.Must(prompt.New(`Fix the issue: {{issue}}`))
func Must(p *Prompt, err error) *Prompt {
	if err != nil {
		panic(err)
	}
	return p
}

// MustNew is shorthand for Must(New(template)).
func MustNew(template stringLiteral) *Prompt {
	return Must(New(template))
}

// MustBindStringLiteral is shorthand for Must(p.BindStringLiteral(...)).
func (p *Prompt) MustBindStringLiteral(name string, value stringLiteral) *Prompt {
	return Must(p.BindStringLiteral(name, value))
}

// MustBindJSON is shorthand for Must(p.BindJSON(...)).
func (p *Prompt) MustBindJSON(name string, data any) *Prompt {
	return Must(p.BindJSON(name, data))
}

// MustBindYAML is shorthand for Must(p.BindYAML(...)).
func (p *Prompt) MustBindYAML(name string, data any) *Prompt {
	return Must(p.BindYAML(name, data))
}
