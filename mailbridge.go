// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package mailbridge exposes a mail-fulfillment vendor REST API, a
// shipping-label API and an address-validation API as a set of callable
// tools behind a single request dispatcher.
package mailbridge

// Version is the version of mailbridge.
var Version = "v0.0.0"
