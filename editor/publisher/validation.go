/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package publisher

import (
	"fmt"
	"regexp"
	"strings"
)

// ConventionalPrefixes lists valid conventional commit types.
var ConventionalPrefixes = []string{
	"feat", "fix", "docs", "style", "refactor",
	"perf", "test", "build", "ci", "chore", "revert",
}

// ConventionalCommitRegex matches titles like "feat: add new feature" or
// "fix(scope): bug fix".
var ConventionalCommitRegex = regexp.MustCompile(`^(` + strings.Join(ConventionalPrefixes, "|") + `)(\(.+\))?:\s+.+`)

// maxTitleLength is the conventional limit for a pull request title.
const maxTitleLength = 72

// minBodyLength rejects bodies too short to explain a change.
const minBodyLength = 20

// Validate checks the pull request title and body against the
// conventional-commit policy and returns the list of violations, empty when
// both pass.
func Validate(title, body string) []string {
	var issues []string

	if !ConventionalCommitRegex.MatchString(title) {
		issues = append(issues, fmt.Sprintf(
			"title does not follow conventional commit format (expected \"<type>: <description>\", valid types: %s): %q",
			strings.Join(ConventionalPrefixes, ", "), title))
	}
	if len(title) > maxTitleLength {
		issues = append(issues, fmt.Sprintf("title exceeds %d characters (%d)", maxTitleLength, len(title)))
	}

	switch trimmed := strings.TrimSpace(body); {
	case trimmed == "":
		issues = append(issues, "body is empty; describe what was changed and why")
	case len(trimmed) < minBodyLength:
		issues = append(issues, fmt.Sprintf("body is too short (%d characters, want at least %d)", len(trimmed), minBodyLength))
	}

	return issues
}
