// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

// Deref dereferences ptr and returns the value it points to if no nil, or else returns def.
//
// Response fields that must distinguish a zero value from absence are
// decoded into pointers; Deref collapses them once presence is settled.
func Deref[T any](ptr *T, def T) T {
	if ptr != nil {
		return *ptr
	}
	return def
}
