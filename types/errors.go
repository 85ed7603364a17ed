// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"fmt"
)

// NotImplementedError is the error type for unimplemented behaviour.
type NotImplementedError string

// Error returns a string representation of the [NotImplementedError].
func (e NotImplementedError) Error() string {
	return string(e)
}

// ConfigurationError is returned when a required credential or key is
// absent. It is raised before any network call is made.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not configured", e.Missing)
}

// TransportError is returned when an outbound HTTP call fails, either with a
// network error or a non-success status. Step names the failing call.
type TransportError struct {
	Step       string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s failed with status %d: %s", e.Step, e.StatusCode, e.Body)
}

// Unwrap returns the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingFieldError is returned when an HTTP call succeeded but an expected
// response field is absent. It is distinct from a transport failure:
// success-with-missing-field and non-success status must never be conflated.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response field %q not found", e.Field)
}
