/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// binding produces the text substituted for a placeholder at build time.
type binding interface {
	value() (string, error)
}

// unboundBinding is the parse-time default for every placeholder.
type unboundBinding struct {
	name string
}

func (u *unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

// literalBinding holds a developer-supplied literal string.
type literalBinding struct {
	val string
}

func (l *literalBinding) value() (string, error) {
	return l.val, nil
}

// jsonBinding marshals its data as indented JSON at build time.
type jsonBinding struct {
	data any
}

func (j *jsonBinding) value() (string, error) {
	bytes, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(bytes), nil
}

// yamlBinding marshals its data as YAML at build time.
type yamlBinding struct {
	data any
}

func (y *yamlBinding) value() (string, error) {
	bytes, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(bytes), nil
}

// existsAndUnbound rejects binds to unknown placeholders and rebinds of
// placeholders that already have a value.
func existsAndUnbound(bindings map[string]binding, name string) error {
	b, exists := bindings[name]
	if !exists {
		return fmt.Errorf("binding %q not found in template", name)
	}
	if _, isUnbound := b.(*unboundBinding); !isUnbound {
		return fmt.Errorf("binding %q already bound", name)
	}
	return nil
}
