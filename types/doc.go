// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package types defines the shared contracts of mailbridge: the [Tool]
// interface, the per-invocation [ToolContext], the transient address and
// validation records, and the internal error taxonomy.
//
// The error taxonomy distinguishes three kinds of failure:
//
//   - [ConfigurationError]: a required credential or key is absent; raised
//     before any network call.
//   - [TransportError]: a non-success HTTP status or a network error.
//   - [MissingFieldError]: the HTTP call succeeded but an expected response
//     field is absent.
//
// All three are rendered to plain text at the tool boundary, so callers of
// the tool surface receive a uniform textual contract; the typed errors stay
// distinguishable internally for testing.
package types
