/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package result parses structured results out of model text responses.
// Models are asked for JSON but routinely wrap it in markdown fences or
// stray prose; Extract tolerates both.
package result

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ExtractJSON returns the JSON payload of a model response. It prefers the
// first fenced ```json block; without one it strips any surrounding fences
// and whitespace and returns the remainder.
func ExtractJSON(text string) string {
	var buf bytes.Buffer
	inBlock := false
	found := false
	for _, line := range strings.Split(text, "\n") {
		if !inBlock && line == "```json" {
			inBlock = true
			found = true
			continue
		}
		if inBlock && line == "```" {
			break
		}
		if inBlock {
			if buf.Len() > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(line)
		}
	}
	if found {
		// An empty fenced block yields ""; the caller's unmarshal reports it.
		return strings.TrimSpace(buf.String())
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Extract unmarshals the JSON payload of a model response into T.
func Extract[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &out); err != nil {
		return out, err
	}
	return out, nil
}
