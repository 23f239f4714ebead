/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package params_test

import (
	"errors"
	"testing"

	"github.com/deepset-ai/dap-github-agent-template/agents/toolcall/params"
)

func TestExtract(t *testing.T) {
	args := map[string]any{
		"path":    "src/main.py",
		"command": "edit",
		"number":  float64(42),
		"big":     float64(9999999999),
		"draft":   false,
		"empty":   "",
		"zero":    float64(0),
	}

	t.Run("string", func(t *testing.T) {
		v, err := params.Extract[string](args, "path")
		if err != nil {
			t.Fatal(err)
		}
		if v != "src/main.py" {
			t.Errorf("got %q, want %q", v, "src/main.py")
		}
	})

	t.Run("empty string is a value", func(t *testing.T) {
		v, err := params.Extract[string](args, "empty")
		if err != nil {
			t.Fatal(err)
		}
		if v != "" {
			t.Errorf("got %q, want empty string", v)
		}
	})

	t.Run("int from float64", func(t *testing.T) {
		v, err := params.Extract[int](args, "number")
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("got %d, want 42", v)
		}
	})

	t.Run("int64 from float64", func(t *testing.T) {
		v, err := params.Extract[int64](args, "big")
		if err != nil {
			t.Fatal(err)
		}
		if v != 9999999999 {
			t.Errorf("got %d, want 9999999999", v)
		}
	})

	t.Run("float64 passthrough", func(t *testing.T) {
		v, err := params.Extract[float64](args, "number")
		if err != nil {
			t.Fatal(err)
		}
		if v != 42 {
			t.Errorf("got %f, want 42", v)
		}
	})

	t.Run("bool", func(t *testing.T) {
		v, err := params.Extract[bool](args, "draft")
		if err != nil {
			t.Fatal(err)
		}
		if v {
			t.Error("got true, want false")
		}
	})

	t.Run("zero int", func(t *testing.T) {
		v, err := params.Extract[int](args, "zero")
		if err != nil {
			t.Fatal(err)
		}
		if v != 0 {
			t.Errorf("got %d, want 0", v)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := params.Extract[string](args, "original")
		if err == nil {
			t.Fatal("expected error for missing parameter")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := params.Extract[bool](args, "path")
		if err == nil {
			t.Fatal("expected error for wrong type")
		}
	})
}

func TestExtractOptional(t *testing.T) {
	args := map[string]any{
		"message": "fix: handle empty list",
		"number":  float64(7),
	}

	t.Run("present", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "message", "")
		if err != nil {
			t.Fatal(err)
		}
		if v != "fix: handle empty list" {
			t.Errorf("got %q, want %q", v, "fix: handle empty list")
		}
	})

	t.Run("missing uses default", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "branch", "main")
		if err != nil {
			t.Fatal(err)
		}
		if v != "main" {
			t.Errorf("got %q, want %q", v, "main")
		}
	})

	t.Run("int conversion", func(t *testing.T) {
		v, err := params.ExtractOptional(args, "number", 0)
		if err != nil {
			t.Fatal(err)
		}
		if v != 7 {
			t.Errorf("got %d, want 7", v)
		}
	})

	t.Run("present but wrong type", func(t *testing.T) {
		_, err := params.ExtractOptional(args, "message", 0)
		if err == nil {
			t.Fatal("expected error for type mismatch")
		}
	})
}

func TestError(t *testing.T) {
	result := params.Error("unknown command %q", "rename")
	if result["error"] != `unknown command "rename"` {
		t.Errorf("got %q, want %q", result["error"], `unknown command "rename"`)
	}
}

func TestErrorWithContext(t *testing.T) {
	result := params.ErrorWithContext(errors.New("file not found"), map[string]any{"path": "docs/missing.md"})
	if result["error"] != "file not found" {
		t.Errorf("got %q, want %q", result["error"], "file not found")
	}
	if result["path"] != "docs/missing.md" {
		t.Errorf("got %q, want %q", result["path"], "docs/missing.md")
	}
}

func TestErrorWithContextNilContext(t *testing.T) {
	result := params.ErrorWithContext(errors.New("failed"), nil)
	if result["error"] != "failed" {
		t.Errorf("got %q, want %q", result["error"], "failed")
	}
}
