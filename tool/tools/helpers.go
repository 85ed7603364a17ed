// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"fmt"
)

// strArg extracts a required string argument.
func strArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", key, v)
	}
	return s, nil
}

// optStrArg extracts an optional string argument, falling back to def.
func optStrArg(args map[string]any, key, def string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return def
}

// errText renders an internal failure as the free-text message callers of
// the tool surface receive. Configuration, transport and missing-field
// failures all pass through here; the typed errors stay distinguishable only
// below the tool boundary.
func errText(err error) string {
	return "Error: " + err.Error()
}
