/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package params

import (
	"fmt"
	"maps"
)

// Extract returns the named required parameter from a tool-call argument map.
// It fails if the parameter is absent or cannot be represented as T.
func Extract[T any](args map[string]any, name string) (T, error) {
	var zero T

	value, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("%s parameter is required", name)
	}

	if v, ok := value.(T); ok {
		return v, nil
	}
	// JSON decoding hands every number over as float64.
	if v, ok := coerceNumber[T](value); ok {
		return v, nil
	}

	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// ExtractOptional returns the named parameter, or defaultValue when absent.
// A present parameter of the wrong type is still an error rather than a
// silent fallback to the default.
func ExtractOptional[T any](args map[string]any, name string, defaultValue T) (T, error) {
	value, ok := args[name]
	if !ok {
		return defaultValue, nil
	}

	if v, ok := value.(T); ok {
		return v, nil
	}
	if v, ok := coerceNumber[T](value); ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("%s parameter must be of type %T, got %T", name, zero, value)
}

// coerceNumber converts float64 JSON numbers into the integer widths tools
// actually declare.
func coerceNumber[T any](value any) (T, bool) {
	var zero T
	f, ok := value.(float64)
	if !ok {
		return zero, false
	}
	switch any(zero).(type) {
	case int:
		return any(int(f)).(T), true
	case int32:
		return any(int32(f)).(T), true
	case int64:
		return any(int64(f)).(T), true
	}
	return zero, false
}

// Error formats an error response map for returning to the model.
func Error(format string, args ...any) map[string]any {
	return map[string]any{
		"error": fmt.Sprintf(format, args...),
	}
}

// ErrorWithContext builds an error response carrying extra fields the model
// can use to correct its next call (for example the path it supplied).
func ErrorWithContext(err error, context map[string]any) map[string]any {
	response := map[string]any{
		"error": err.Error(),
	}
	maps.Copy(response, context)
	return response
}
