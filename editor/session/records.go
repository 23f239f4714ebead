/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package session

import "time"

// OpKind is the kind of committed mutation an EditRecord describes.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpEdit   OpKind = "edit"
	OpDelete OpKind = "delete"
)

// FileState is the full content and blob sha of a file on one side of a
// mutation. Storing whole contents, not diffs, is what makes every record
// invertible with a single write.
type FileState struct {
	Content string
	SHA     string
}

// EditRecord is one committed mutation on the working branch. Before is nil
// for creates, After is nil for deletes. Compensating marks records appended
// by Undo; they stay in the log for audit but never become undo-eligible.
type EditRecord struct {
	Operation    OpKind
	Path         string
	Before       *FileState
	After        *FileState
	CommitSHA    string
	Message      string
	Timestamp    time.Time
	Compensating bool
}
