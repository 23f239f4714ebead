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
	"time"

	"github.com/deepset-ai/dap-github-agent-template/editor/gateway"
	"github.com/deepset-ai/dap-github-agent-template/editor/metrics"
)

// Sentinel errors for edit-precondition and lifecycle violations. Gateway
// sentinels (gateway.ErrNotFound, ErrAlreadyExists, ErrConflict, ErrTooLarge)
// pass through unchanged.
var (
	// ErrTooShort indicates the original text of an edit spans fewer than
	// 2 lines. Short snippets are rarely unique; callers include
	// surrounding lines instead.
	ErrTooShort = errors.New("original text too short")

	// ErrNotUnique indicates the original text of an edit occurs more than
	// once in the current file content, so the edit is ambiguous.
	ErrNotUnique = errors.New("original text not unique")

	// ErrEmptyContent indicates a create with blank content.
	ErrEmptyContent = errors.New("content is empty")

	// ErrNothingToUndo indicates there is no record left to revert: the log
	// is empty or the last mutation has already been undone.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNoChanges indicates a finalize on a session with no committed
	// mutations. An empty pull request is never opened.
	ErrNoChanges = errors.New("no changes to publish")

	// ErrSessionClosed indicates a call against a finalized session.
	ErrSessionClosed = errors.New("session is finalized")
)

// State is the lifecycle phase of a Session.
type State string

const (
	StateInitialized State = "initialized"
	StateActive      State = "active"
	StateFinalized   State = "finalized"
)

// Gateway is the slice of the repository gateway the session mutates
// through. Reads must already resolve against the working branch; pass
// gateway.Gateway.ForRef(branch.Name).
type Gateway interface {
	ReadTree(ctx context.Context, path string) ([]gateway.TreeEntry, error)
	ReadBlob(ctx context.Context, path string) (*gateway.FileSnapshot, error)
	WriteBlob(ctx context.Context, path, content, message, branch, expectedSHA string) (string, error)
	DeleteBlob(ctx context.Context, path, message, branch, expectedSHA string) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithMetrics attaches a metrics recorder. A nil recorder is a no-op.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Session) {
		s.metrics = rec
	}
}

// Session is the edit engine for one issue/branch pair. It owns the
// append-only EditRecord log; the log never leaves process memory for the
// session's lifetime and is the authoritative record of what committed, so
// callers reconcile against it after a cancellation rather than assuming
// from their own state.
type Session struct {
	gw      Gateway
	branch  gateway.WorkingBranch
	metrics *metrics.Recorder

	state   State
	records []EditRecord

	// undoIdx points at the single undo-eligible record, -1 when the slot
	// is empty or consumed.
	undoIdx int
}

// New creates a Session committing to branch through gw.
func New(gw Gateway, branch gateway.WorkingBranch, opts ...Option) *Session {
	s := &Session{
		gw:      gw,
		branch:  branch,
		state:   StateInitialized,
		undoIdx: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SessionStarted()
	return s
}

// State returns the session's lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Branch returns the working branch all mutations target.
func (s *Session) Branch() gateway.WorkingBranch {
	return s.branch
}

// Records returns a copy of the EditRecord log, oldest first.
func (s *Session) Records() []EditRecord {
	out := make([]EditRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Finalize transitions the session to Finalized. The publisher calls it
// after the pull request is open; afterwards every operation fails with
// ErrSessionClosed.
func (s *Session) Finalize() error {
	if s.state == StateFinalized {
		return ErrSessionClosed
	}
	if len(s.records) == 0 {
		return ErrNoChanges
	}
	s.state = StateFinalized
	s.metrics.SessionFinalized()
	return nil
}

// View returns a directory listing for tree paths or the full content for
// file paths. The empty path addresses the repository root. Read-only: no
// EditRecord is appended.
func (s *Session) View(ctx context.Context, path string) (string, error) {
	if err := s.open(); err != nil {
		return "", err
	}

	out, err := s.view(ctx, path)
	if err != nil {
		return "", err
	}

	s.state = StateActive
	return out, nil
}

func (s *Session) view(ctx context.Context, path string) (string, error) {
	if path == "" {
		entries, err := s.gw.ReadTree(ctx, path)
		if err != nil {
			return "", err
		}
		return formatListing(path, entries), nil
	}

	snap, err := s.gw.ReadBlob(ctx, path)
	if err == nil {
		return fmt.Sprintf("File content for %s:\n%s", path, snap.Content), nil
	}
	if !errors.Is(err, gateway.ErrNotFound) {
		return "", err
	}

	// Not a file; it may still be a directory. If that fails too, the
	// blob error names what the caller asked for.
	entries, treeErr := s.gw.ReadTree(ctx, path)
	if treeErr != nil {
		return "", err
	}
	return formatListing(path, entries), nil
}

func formatListing(path string, entries []gateway.TreeEntry) string {
	var sb strings.Builder
	if path == "" {
		sb.WriteString("Directory listing for repository root:\n")
	} else {
		fmt.Fprintf(&sb, "Directory listing for %s:\n", path)
	}
	for _, e := range entries {
		name := e.Name
		if e.Type == gateway.EntryTypeDir {
			name += "/"
		}
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// open rejects calls against a finalized session.
func (s *Session) open() error {
	if s.state == StateFinalized {
		return ErrSessionClosed
	}
	return nil
}

// commit appends a record for a successful mutation. Only direct mutations
// occupy the undo slot; compensating records clear it so a second
// consecutive undo is rejected.
func (s *Session) commit(rec EditRecord) {
	rec.Timestamp = time.Now()
	s.records = append(s.records, rec)
	if rec.Compensating {
		s.undoIdx = -1
		s.metrics.UndoApplied()
	} else {
		s.undoIdx = len(s.records) - 1
		s.metrics.EditApplied(string(rec.Operation))
	}
	s.state = StateActive
}
