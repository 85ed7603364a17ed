// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package mailapi is the client for the mail-fulfillment vendor REST API:
// document upload, address-list creation, job creation and submission, job
// status, proof viewing and balance check.
//
// Every operation takes the caller's pre-encoded Basic credential; an empty
// credential short-circuits with a [types.ConfigurationError] before any
// network call. Vendor-side entities (documents, address lists, jobs) are
// referenced only by the opaque identifiers the vendor assigns; nothing is
// cached or persisted locally.
//
// The letter-submission pipeline ([Client.SendLetter]) is strictly
// sequential and has no compensation logic: when a late step fails, the
// document and address list created by the earlier steps are left behind
// vendor-side. Operators reap such orphans out of band.
package mailapi
