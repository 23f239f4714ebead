/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/google/go-github/v75/github"
)

// Sentinel errors returned by Gateway operations. Callers match them with
// errors.Is; the wrapped message carries the operation and path.
var (
	// ErrNotFound indicates the path, ref, issue, or pull request does not
	// exist (or the path is not the kind of object the operation expects).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates the branch, file, or pull request already
	// exists. Creation is never a silent no-op, so callers notice reuse.
	ErrAlreadyExists = errors.New("already exists")

	// ErrConflict indicates the expected sha no longer matches the remote
	// content. Something else committed to the path since it was read.
	ErrConflict = errors.New("conflict")

	// ErrTooLarge indicates a blob exceeds the configured byte ceiling.
	// Oversized content is rejected outright, never truncated.
	ErrTooLarge = errors.New("too large")

	// ErrAccessDenied indicates the token lacks access to the repository
	// or the resource (401/403).
	ErrAccessDenied = errors.New("access denied")
)

// IsTransient reports whether err is worth retrying: 5xx responses, network
// failures, and timeouts. Client-side failures (4xx, validation) are
// permanent and never qualify.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if ger := errorResponse(err); ger != nil {
		return ger.Response != nil && ger.Response.StatusCode >= http.StatusInternalServerError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// errorResponse unwraps the *github.ErrorResponse from err, if any.
func errorResponse(err error) *github.ErrorResponse {
	var ger *github.ErrorResponse
	if errors.As(err, &ger) {
		return ger
	}
	return nil
}

// statusCode returns the HTTP status carried by err, or 0 when err did not
// come from the GitHub API.
func statusCode(err error) int {
	if ger := errorResponse(err); ger != nil && ger.Response != nil {
		return ger.Response.StatusCode
	}
	return 0
}

// mapCommon converts the status codes whose meaning is uniform across
// operations. 409 and 422 depend on what the caller asked for, so each
// operation maps those itself. Errors that do not map (including 5xx, which
// retry loops classify via IsTransient) pass through unchanged.
func mapCommon(err error) error {
	ger := errorResponse(err)
	if ger == nil || ger.Response == nil {
		return err
	}
	switch ger.Response.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, ger.Message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrAccessDenied, ger.Message)
	}
	return err
}
