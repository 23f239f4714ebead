/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders a human-readable summary of a finished edit
// session: the commit-by-commit record log and per-file line counts parsed
// from the branch comparison. Purely informational; rendering failures never
// affect the session outcome.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepset-ai/dap-github-agent-template/editor/gateway"
	"github.com/deepset-ai/dap-github-agent-template/editor/session"
	"github.com/waigani/diffparser"
)

// Write renders the session summary to w.
func Write(w io.Writer, records []session.EditRecord, diffs []gateway.FileDiff) error {
	fmt.Fprintf(w, "Session summary: %d commit(s)\n\n", len(records))

	if len(records) > 0 {
		table := newTable([]string{"Operation", "Path", "Commit", "Message"}, w)
		for _, rec := range records {
			op := string(rec.Operation)
			if rec.Compensating {
				op += " (undo)"
			}
			if err := table.Append([]string{op, rec.Path, shortSHA(rec.CommitSHA), rec.Message}); err != nil {
				return fmt.Errorf("appending record row: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("rendering record table: %w", err)
		}
	}

	if len(diffs) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\nFiles changed against the base branch:\n\n")
	table := newTable([]string{"Path", "Status", "Added", "Removed"}, w)
	for _, d := range diffs {
		added, removed := lineCounts(d)
		if err := table.Append([]string{d.Path, d.Status, fmt.Sprint(added), fmt.Sprint(removed)}); err != nil {
			return fmt.Errorf("appending diff row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering diff table: %w", err)
	}
	return nil
}

// lineCounts derives added/removed line counts by parsing the file's patch;
// files without a textual patch (binaries, very large diffs) fall back to
// the counts the comparison API reported.
func lineCounts(d gateway.FileDiff) (added, removed int) {
	if d.Patch == "" {
		return d.Additions, d.Deletions
	}

	diff, err := diffparser.Parse(patchDocument(d))
	if err != nil || len(diff.Files) == 0 {
		return d.Additions, d.Deletions
	}

	for _, file := range diff.Files {
		for _, hunk := range file.Hunks {
			for _, line := range hunk.WholeRange.Lines {
				switch line.Mode {
				case diffparser.ADDED:
					added++
				case diffparser.REMOVED:
					removed++
				}
			}
		}
	}
	return added, removed
}

// patchDocument rebuilds the unified-diff framing the comparison API strips
// from per-file patches, so the parser sees a complete document.
func patchDocument(d gateway.FileDiff) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "diff --git a/%s b/%s\n", d.Path, d.Path)
	fmt.Fprintf(&sb, "--- a/%s\n", d.Path)
	fmt.Fprintf(&sb, "+++ b/%s\n", d.Path)
	sb.WriteString(d.Patch)
	if !strings.HasSuffix(d.Patch, "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}
