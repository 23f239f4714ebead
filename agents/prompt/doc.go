/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package prompt provides injection-resistant prompt construction for the
agents in this repository. Templates are source-code literals; runtime
data enters only through encoders. The model is SQL prepared statements,
applied to LLM prompts.

Issue bodies and comments are attacker-controlled text, so they must
never be spliced into a prompt by string concatenation. This package
enforces that discipline with the type system:

  - Templates and literal bindings only accept untyped string constants,
    so they can only come from source code.
  - Runtime data is bound with BindJSON or BindYAML, which route it
    through the standard encoders. A value containing "{{evil}}" arrives
    in the prompt as escaped text, never as a new placeholder.
  - Substitution is single-pass: resolved values are not rescanned, so
    there is no transitive expansion.
  - Prompts are immutable. Every Bind returns a new instance, making a
    parsed template safe to share across goroutines and requests.

# Usage

Declare the template once, then bind per request:

	var editTemplate = prompt.MustNew(`You are resolving a GitHub issue.

	Issue discussion:
	{{transcript}}

	Instructions: {{instructions}}`)

	p, err := editTemplate.BindJSON("transcript", transcript)
	if err != nil {
		return err
	}
	p, err = p.BindStringLiteral("instructions", "Make the smallest change that resolves the issue.")
	if err != nil {
		return err
	}
	system, err := p.Build()

Build fails if any placeholder is still unbound, so a template change
that adds a placeholder cannot silently ship a prompt with a literal
"{{name}}" in it.

# Placeholders

Placeholders are written {{name}}, where name starts with a letter and
continues with letters, digits, or underscores. Anything else, including
an empty {{}}, is a parse error from New. Single braces are literal text.

Each placeholder binds exactly once; a second bind of the same name is an
error rather than an overwrite. A placeholder may appear multiple times
in the template and receives the same value at every occurrence.

# Bindable

Request types implement Bindable so harnesses can bind them without
knowing their shape:

	type Request struct {
		Transcript transcript.Transcript
	}

	func (r Request) Bind(p *prompt.Prompt) (*prompt.Prompt, error) {
		return p.BindJSON("transcript", r.Transcript)
	}

Noop is a ready-made Bindable for requests with nothing to bind.
*/
package prompt
