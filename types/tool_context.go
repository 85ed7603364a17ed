// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"log/slog"

	"github.com/google/uuid"
)

// ToolContext carries the per-invocation state of a single tool call.
//
// A ToolContext is created by the dispatcher for every dispatched request and
// is never shared between invocations. The mail-vendor credential travels
// here rather than in ambient configuration: it is supplied once per
// invocation context and never renewed.
type ToolContext struct {
	invocationID   string
	mailCredential string
	logger         *slog.Logger
}

// NewToolContext creates a new [ToolContext] with a fresh invocation ID.
func NewToolContext(logger *slog.Logger) *ToolContext {
	return &ToolContext{
		invocationID: "mb-" + uuid.NewString(),
		logger:       logger,
	}
}

// WithMailCredential sets the pre-encoded mail vendor credential for the [*ToolContext].
func (tc *ToolContext) WithMailCredential(cred string) *ToolContext {
	tc.mailCredential = cred
	return tc
}

// InvocationID returns the unique ID of this tool invocation.
func (tc *ToolContext) InvocationID() string {
	return tc.invocationID
}

// MailCredential returns the pre-encoded Basic credential for the mail
// vendor, or the empty string when the caller supplied none.
func (tc *ToolContext) MailCredential() string {
	return tc.mailCredential
}

// Logger returns the logger for the tool context.
func (tc *ToolContext) Logger() *slog.Logger {
	if tc.logger == nil {
		return slog.Default()
	}
	return tc.logger
}
