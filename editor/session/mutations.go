/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deepset-ai/dap-github-agent-template/editor/gateway"
)

// Create commits a new file at path and returns the commit sha. It fails
// with ErrEmptyContent for blank content and gateway.ErrAlreadyExists when
// the path currently resolves to a blob.
func (s *Session) Create(ctx context.Context, path, content, message string) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("creating %q: %w", path, ErrEmptyContent)
	}

	// An oversized blob is still a blob: only a clean not-found clears the
	// path for creation.
	switch _, err := s.gw.ReadBlob(ctx, path); {
	case err == nil, errors.Is(err, gateway.ErrTooLarge):
		return "", fmt.Errorf("creating %q: %w", path, gateway.ErrAlreadyExists)
	case !errors.Is(err, gateway.ErrNotFound):
		return "", err
	}

	commit, err := s.gw.WriteBlob(ctx, path, content, message, s.branch.Name, "")
	if err != nil {
		return "", err
	}

	s.commit(EditRecord{
		Operation: OpCreate,
		Path:      path,
		After:     &FileState{Content: content, SHA: gateway.BlobSHA(content)},
		CommitSHA: commit,
		Message:   message,
	})
	return commit, nil
}

// Edit replaces the single occurrence of original with replacement in the
// file at path and commits the result. The match runs against the current
// remote content, never against what the caller last viewed: staleness
// surfaces as gateway.ErrNotFound (zero occurrences) or ErrNotUnique (more
// than one), not as a splice into the wrong region. Originals spanning
// fewer than 2 lines fail with ErrTooShort.
func (s *Session) Edit(ctx context.Context, path, original, replacement, message string) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}
	if lineSpan(original) < 2 {
		return "", fmt.Errorf("editing %q: %w: original must span at least 2 lines", path, ErrTooShort)
	}

	snap, err := s.gw.ReadBlob(ctx, path)
	if err != nil {
		return "", err
	}

	switch n := strings.Count(snap.Content, original); {
	case n == 0:
		return "", fmt.Errorf("editing %q: original text %w in current content", path, gateway.ErrNotFound)
	case n > 1:
		return "", fmt.Errorf("editing %q: original text occurs %d times: %w", path, n, ErrNotUnique)
	}

	updated := strings.Replace(snap.Content, original, replacement, 1)

	commit, err := s.gw.WriteBlob(ctx, path, updated, message, s.branch.Name, snap.SHA)
	if err != nil {
		return "", err
	}

	s.commit(EditRecord{
		Operation: OpEdit,
		Path:      path,
		Before:    &FileState{Content: snap.Content, SHA: snap.SHA},
		After:     &FileState{Content: updated, SHA: gateway.BlobSHA(updated)},
		CommitSHA: commit,
		Message:   message,
	})
	return commit, nil
}

// Delete commits a deletion of the file at path. It fails with
// gateway.ErrNotFound unless the path resolves to a blob.
func (s *Session) Delete(ctx context.Context, path, message string) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}

	snap, err := s.gw.ReadBlob(ctx, path)
	if err != nil {
		return "", err
	}

	commit, err := s.gw.DeleteBlob(ctx, path, message, s.branch.Name, snap.SHA)
	if err != nil {
		return "", err
	}

	s.commit(EditRecord{
		Operation: OpDelete,
		Path:      path,
		Before:    &FileState{Content: snap.Content, SHA: snap.SHA},
		CommitSHA: commit,
		Message:   message,
	})
	return commit, nil
}

// Undo reverts the most recent mutation with a compensating forward commit:
// a create is deleted, a delete is recreated, an edit is written back to its
// stored before content. The reverted record's slot is consumed, so a second
// consecutive Undo fails with ErrNothingToUndo. An empty message gets a
// synthesized revert message.
func (s *Session) Undo(ctx context.Context, message string) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}
	if s.undoIdx < 0 {
		return "", ErrNothingToUndo
	}

	rec := s.records[s.undoIdx]
	if message == "" {
		message = fmt.Sprintf("revert: undo %s of %s", rec.Operation, rec.Path)
	}

	var inverse EditRecord
	switch rec.Operation {
	case OpCreate:
		// Re-fetch for the current blob sha; the remote may have been
		// touched out-of-band, and a stale sha must fail as a conflict.
		snap, err := s.gw.ReadBlob(ctx, rec.Path)
		if err != nil {
			return "", err
		}
		commit, err := s.gw.DeleteBlob(ctx, rec.Path, message, s.branch.Name, snap.SHA)
		if err != nil {
			return "", err
		}
		inverse = EditRecord{Operation: OpDelete, Path: rec.Path, Before: rec.After, CommitSHA: commit, Message: message, Compensating: true}

	case OpDelete:
		commit, err := s.gw.WriteBlob(ctx, rec.Path, rec.Before.Content, message, s.branch.Name, "")
		if err != nil {
			return "", err
		}
		inverse = EditRecord{Operation: OpCreate, Path: rec.Path, After: rec.Before, CommitSHA: commit, Message: message, Compensating: true}

	case OpEdit:
		snap, err := s.gw.ReadBlob(ctx, rec.Path)
		if err != nil {
			return "", err
		}
		commit, err := s.gw.WriteBlob(ctx, rec.Path, rec.Before.Content, message, s.branch.Name, snap.SHA)
		if err != nil {
			return "", err
		}
		inverse = EditRecord{Operation: OpEdit, Path: rec.Path, Before: rec.After, After: rec.Before, CommitSHA: commit, Message: message, Compensating: true}

	default:
		return "", fmt.Errorf("cannot invert operation %q", rec.Operation)
	}

	s.commit(inverse)
	return inverse.CommitSHA, nil
}

// lineSpan counts the lines original covers. A single trailing newline does
// not count as a second line.
func lineSpan(original string) int {
	if original == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(original, "\n"), "\n") + 1
}
