/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package result

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{{
		name:  "fenced block",
		input: "Here is the result:\n```json\n{\"key\": \"value\"}\n```\nDone.",
		want:  `{"key": "value"}`,
	}, {
		name:  "multiline fenced block",
		input: "```json\n{\n  \"files\": [\"a.py\"],\n  \"summary\": \"added a\"\n}\n```",
		want:  "{\n  \"files\": [\"a.py\"],\n  \"summary\": \"added a\"\n}",
	}, {
		name:  "first of several blocks wins",
		input: "```json\n{\"first\": true}\n```\ntext\n```json\n{\"second\": true}\n```",
		want:  `{"first": true}`,
	}, {
		name:  "bare json passes through",
		input: "  {\"plain\": \"json\"}  ",
		want:  `{"plain": "json"}`,
	}, {
		name:  "generic fence without language marker",
		input: "```\n{\"generic\": true}\n```",
		want:  `{"generic": true}`,
	}, {
		name:  "unterminated block",
		input: "```json\n{\"incomplete\": true",
		want:  `{"incomplete": true`,
	}, {
		name:  "inline fence on a single line",
		input: "```json{\"inline\": true}```",
		want:  `{"inline": true}`,
	}, {
		name:  "windows line endings",
		input: "```json\r\n{\"windows\": true}\r\n```",
		want:  `{"windows": true}`,
	}, {
		name:  "empty block",
		input: "```json\n```",
		want:  "",
	}, {
		name:  "empty input",
		input: "",
		want:  "",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	type summary struct {
		Files   []string `json:"files"`
		Outcome string   `json:"outcome"`
	}

	got, err := Extract[summary]("Work is complete.\n```json\n{\"files\": [\"a.py\", \"b.py\"], \"outcome\": \"fixed\"}\n```")
	if err != nil {
		t.Fatalf("Extract() = %v", err)
	}
	want := summary{Files: []string{"a.py", "b.py"}, Outcome: "fixed"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Extract[summary]("no json here at all"); err == nil {
		t.Error("Extract() = nil error for non-JSON input")
	}
}
