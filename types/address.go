// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package types

// Address is a postal address as supplied by a caller.
//
// It has no identity beyond its fields; it is used as tool input and as a
// sub-structure of vendor request payloads.
type Address struct {
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`

	// Country is the region code of the address. Defaults to "US".
	Country string `json:"country,omitempty"`
}

// AddressValidationResult is the structured outcome of one address
// validation call. It is produced once per call and not mutated afterwards.
type AddressValidationResult struct {
	// IsValid is true when the validation service confirmed every component
	// of the address without inferring any.
	IsValid bool `json:"is_valid"`

	// CorrectedAddress is the corrected address substructure returned by the
	// validation service, verbatim. Empty (never nil) when the service
	// returned none.
	CorrectedAddress map[string]any `json:"corrected_address"`

	// OriginalAddress echoes the caller's input.
	OriginalAddress Address `json:"original_address"`

	// Messages is the ordered list of human-readable messages from the
	// validation service. Empty (never nil) when the service returned none.
	Messages []string `json:"messages"`
}
