/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package gateway is a thin authenticated client over the GitHub API, scoped
// to a single repository. It exposes the handful of primitives an edit
// session needs (tree and blob reads, optimistic-concurrency writes and
// deletes, branch creation, pull request creation and lookup, issue and
// comment reads) and maps GitHub's status codes onto a small set of
// sentinel errors callers can test with errors.Is.
//
// Every operation is synchronous and single-attempt: the gateway never
// retries, callers layer retry policy above it (see IsTransient for the
// classification retry loops should use). Each call derives a bounded
// context from the configured per-call timeout, so a hung remote can never
// stall a caller indefinitely.
//
// A Gateway reads from the repository's default branch unless derived with
// ForRef, which binds reads to a specific branch. Writes always name their
// target branch explicitly.
package gateway
