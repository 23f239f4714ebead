/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package callbacks provides lightweight callback types for agent tool operations.

This package contains the callback structs and data types used by tools
without importing AI SDK dependencies. Packages that provide callback
implementations (like the session and publisher layers) can import this
package without pulling in anthropic-sdk-go, openai-go, or
google.golang.org/genai.

For the full tool provider pattern with AI SDK integration, import the parent
toolcall package instead.

# Session Callbacks

SessionCallbacks provides repository browsing and editing operations backed
by an editing session:

	cb := callbacks.SessionCallbacks{
		ViewPath: func(ctx context.Context, path string) (string, error) {
			// Return a directory listing or file content
		},
		EditFile: func(ctx context.Context, path, original, replacement, message string) error {
			// Replace an exact string match and commit
		},
		OpenPullRequest: func(ctx context.Context, title, body string) (*callbacks.PullRequest, error) {
			// Finalize the session and open the pull request
		},
		// ... other callbacks
	}
*/
package callbacks
