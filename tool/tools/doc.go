// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tools provides the callable mailbridge tools: address validation,
// shipping-label creation, letter submission, job status, proof viewing,
// balance check and the postcard stub.
//
// Every tool performs at most a short, linear sequence of outbound HTTP
// calls and reports vendor-side failures as plain text rather than as
// errors, preserving the free-text contract of the tool surface. Only
// dispatcher-level problems (malformed arguments aside, an unknown tool)
// surface as errors.
package tools
