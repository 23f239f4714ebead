/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

// ToolProvider is the composable unit for building tool surfaces.
// Implementations return provider-independent tool definitions that the
// claudetool, googletool, and openaitool packages convert to SDK types.
//
// Providers compose by embedding: a provider that adds repository editing
// tools can embed the callbacks of another provider and merge the maps, so
// an agent assembles its surface from small, independently testable pieces.
type ToolProvider[Resp any, CB any] interface {
	// Tools returns the tool definitions keyed by tool name.
	// The callbacks parameter carries the functions the handlers invoke,
	// keeping the tools decoupled from any concrete client.
	Tools(cb CB) map[string]Tool[Resp]
}
