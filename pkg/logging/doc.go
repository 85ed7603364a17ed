// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package logging provides helpers for carrying a [*log/slog.Logger] through
// a [context.Context].
package logging
