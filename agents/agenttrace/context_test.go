/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package agenttrace

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestRepository(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{{
		name: "issue key",
		key:  "issue:deepset-ai/haystack/42",
		want: "deepset-ai/haystack",
	}, {
		name: "deep path after repo",
		key:  "issue:deepset-ai/haystack/42/extra",
		want: "deepset-ai/haystack",
	}, {
		name: "empty key",
		key:  "",
		want: "",
	}, {
		name: "no colon",
		key:  "deepset-ai/haystack/42",
		want: "",
	}, {
		name: "missing repo segment",
		key:  "issue:deepset-ai",
		want: "",
	}, {
		name: "missing trailing segment",
		key:  "issue:deepset-ai/haystack",
		want: "",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ec := ExecutionContext{SessionKey: test.key}
			if got := ec.Repository(); got != test.want {
				t.Errorf("Repository(%q): got = %q, wanted = %q", test.key, got, test.want)
			}
		})
	}
}

func TestEnrichAttributes(t *testing.T) {
	ec := ExecutionContext{
		SessionKey:  "issue:deepset-ai/haystack/42",
		TriggerType: "issue",
		BranchName:  "issue-42",
		TurnNumber:  2,
	}

	base := []attribute.KeyValue{attribute.String("outcome", "success")}
	attrs := ec.EnrichAttributes(base)

	got := map[string]string{}
	for _, kv := range attrs {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	if got["outcome"] != "success" {
		t.Errorf("base attribute: got = %q, wanted = %q", got["outcome"], "success")
	}
	if got["trigger_type"] != "issue" {
		t.Errorf("trigger_type: got = %q, wanted = %q", got["trigger_type"], "issue")
	}
	if got["repository"] != "deepset-ai/haystack" {
		t.Errorf("repository: got = %q, wanted = %q", got["repository"], "deepset-ai/haystack")
	}
	if got["turn"] != "2" {
		t.Errorf("turn: got = %q, wanted = %q", got["turn"], "2")
	}

	// Unbounded identifiers stay out of metric labels.
	if _, ok := got["session_key"]; ok {
		t.Error("session_key must not appear in metric attributes")
	}
	if _, ok := got["branch_name"]; ok {
		t.Error("branch_name must not appear in metric attributes")
	}
}

func TestExecutionContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := GetExecutionContext(ctx); got != (ExecutionContext{}) {
		t.Errorf("empty context: got = %+v, wanted zero value", got)
	}

	want := ExecutionContext{
		SessionKey:  "issue:deepset-ai/haystack/7",
		TriggerType: "issue",
		BranchName:  "issue-7",
		TurnNumber:  1,
	}
	ctx = WithExecutionContext(ctx, want)

	if got := GetExecutionContext(ctx); got != want {
		t.Errorf("round trip: got = %+v, wanted = %+v", got, want)
	}
}
