/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines provider-independent tool definitions for agents.
//
// A Tool pairs a Definition (name, description, parameters) with a single
// Handler. The claudetool, googletool, and openaitool subpackages convert
// Tools to the SDK-specific shapes, so each tool is defined and tested once
// and served to every model provider.
//
// # Providers
//
// Tools are grouped into ToolProviders keyed by a callback struct:
//
//	provider := toolcall.NewSessionToolsProvider[*Result]()
//	tools := provider.Tools(callbacks.SessionCallbacks{
//		ViewPath:   func(ctx context.Context, path string) (string, error) { ... },
//		CreateFile: func(ctx context.Context, path, content, message string) error { ... },
//		// ...
//	})
//
// The callbacks keep handlers decoupled from concrete clients: production
// wires them to an editing session, tests stub individual operations.
//
// # Session tools
//
// NewSessionToolsProvider exposes the repository editing surface:
// view_repository browses trees and files, file_editor applies committed
// create/edit/delete/undo operations, and create_pr finalizes the working
// branch into a pull request. The create_pr tool is only included when the
// OpenPullRequest callback is set.
package toolcall
