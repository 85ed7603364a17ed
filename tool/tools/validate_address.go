// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"
	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/internal/addressvalidation"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/types"
)

// ValidateAddressTool validates a postal address against the
// address-validation service.
type ValidateAddressTool struct {
	*tool.Tool

	client *addressvalidation.Client
}

var _ types.Tool = (*ValidateAddressTool)(nil)

// NewValidateAddressTool returns the new [ValidateAddressTool] backed by client.
func NewValidateAddressTool(client *addressvalidation.Client) *ValidateAddressTool {
	description := heredoc.Doc(`
		Validate a US postal address.

		Returns a structured result with an is_valid flag, the corrected
		address returned by the validation service, the original input and
		any validation messages.
	`)

	return &ValidateAddressTool{
		Tool:   tool.NewTool("validate_address", description, false),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *ValidateAddressTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"address_line": {
					Type:        genai.TypeString,
					Description: "Single-line street address",
				},
				"locality": {
					Type:        genai.TypeString,
					Description: "City or locality",
				},
				"postal_code": {
					Type: genai.TypeString,
				},
				"region_code": {
					Type:        genai.TypeString,
					Description: `Two-letter region code, defaults to "US"`,
				},
			},
			Required: []string{"address_line", "locality", "postal_code"},
		},
	}
}

// Run implements [types.Tool].
func (t *ValidateAddressTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	addressLine, err := strArg(args, "address_line")
	if err != nil {
		return errText(err), nil
	}
	locality, err := strArg(args, "locality")
	if err != nil {
		return errText(err), nil
	}
	postalCode, err := strArg(args, "postal_code")
	if err != nil {
		return errText(err), nil
	}

	result, err := t.client.Validate(ctx, addressvalidation.ValidateInput{
		AddressLine: addressLine,
		Locality:    locality,
		PostalCode:  postalCode,
		RegionCode:  optStrArg(args, "region_code", "US"),
	})
	if err != nil {
		return errText(err), nil
	}

	return result, nil
}
