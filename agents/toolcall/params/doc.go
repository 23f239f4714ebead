/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package params extracts typed parameters from tool-call argument maps and
// formats error responses for returning to the model.
//
// The same extraction and error shapes are shared by the Claude, Gemini, and
// OpenAI tool conversions so that handler behavior does not drift between
// providers.
package params
