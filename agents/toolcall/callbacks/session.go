/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package callbacks

import "context"

// PullRequest describes the pull request opened when a session is finalized.
type PullRequest struct {
	// URL is the HTML URL of the pull request.
	URL string `json:"url"`

	// Number is the pull request number in the repository.
	Number int `json:"number"`

	// State is the pull request state as reported by the host ("open", "draft").
	State string `json:"state"`
}

// SessionCallbacks provides callback functions for browsing and editing a
// repository branch through an editing session. Mutating operations commit
// directly to the session's working branch.
type SessionCallbacks struct {
	// ViewPath returns a directory listing for tree paths or the content
	// for file paths. The empty path addresses the repository root.
	ViewPath func(ctx context.Context, path string) (content string, err error)

	// CreateFile adds a new file on the working branch and commits it.
	CreateFile func(ctx context.Context, path, content, message string) error

	// EditFile replaces an exact, unique occurrence of original with
	// replacement in the named file and commits the result.
	EditFile func(ctx context.Context, path, original, replacement, message string) error

	// DeleteFile removes the named file from the working branch and commits
	// the deletion.
	DeleteFile func(ctx context.Context, path, message string) error

	// UndoLast reverts the most recent change that has not already been
	// undone, using a compensating commit.
	UndoLast func(ctx context.Context) error

	// OpenPullRequest finalizes the session and opens a pull request from
	// the working branch against the default branch.
	OpenPullRequest func(ctx context.Context, title, body string) (*PullRequest, error)
}

// HasOpenPullRequest returns true if the OpenPullRequest callback is available.
// Dry-run harnesses leave it unset, which drops the create_pr tool from the
// surface.
func (c SessionCallbacks) HasOpenPullRequest() bool {
	return c.OpenPullRequest != nil
}
