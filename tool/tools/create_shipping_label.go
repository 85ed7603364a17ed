// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/internal/shiplabel"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/types"
)

// labelNotFoundMessage is returned when the label purchase succeeded but the
// response carried no label URL. It is deliberately not phrased as an error.
const labelNotFoundMessage = "Label URL not found in response."

// CreateShippingLabelTool buys a Priority shipping label for a parcel.
type CreateShippingLabelTool struct {
	*tool.Tool

	client *shiplabel.Client
}

var _ types.Tool = (*CreateShippingLabelTool)(nil)

// NewCreateShippingLabelTool returns the new [CreateShippingLabelTool] backed by client.
func NewCreateShippingLabelTool(client *shiplabel.Client) *CreateShippingLabelTool {
	description := heredoc.Doc(`
		Create a USPS Priority shipping label.

		Takes flat to/from address fields and a parcel weight in ounces, and
		returns the URL of the purchased label.
	`)

	return &CreateShippingLabelTool{
		Tool:   tool.NewTool("create_shipping_label", description, false),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *CreateShippingLabelTool) GetDeclaration() *genai.FunctionDeclaration {
	addressFields := func(side string) map[string]*genai.Schema {
		return map[string]*genai.Schema{
			side + "_name":   {Type: genai.TypeString},
			side + "_street": {Type: genai.TypeString},
			side + "_city":   {Type: genai.TypeString},
			side + "_state":  {Type: genai.TypeString},
			side + "_zip":    {Type: genai.TypeString},
		}
	}

	properties := map[string]*genai.Schema{
		"weight": {
			Type:        genai.TypeString,
			Description: "Parcel weight in ounces",
		},
	}
	for k, v := range addressFields("to") {
		properties[k] = v
	}
	for k, v := range addressFields("from") {
		properties[k] = v
	}

	required := []string{
		"to_name", "to_street", "to_city", "to_state", "to_zip",
		"from_name", "from_street", "from_city", "from_state", "from_zip",
		"weight",
	}

	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

// Run implements [types.Tool].
func (t *CreateShippingLabelTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	in := shiplabel.LabelInput{}

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"to_name", &in.To.Name},
		{"to_street", &in.To.Street},
		{"to_city", &in.To.City},
		{"to_state", &in.To.State},
		{"to_zip", &in.To.PostalCode},
		{"from_name", &in.From.Name},
		{"from_street", &in.From.Street},
		{"from_city", &in.From.City},
		{"from_state", &in.From.State},
		{"from_zip", &in.From.PostalCode},
		{"weight", &in.WeightOunces},
	} {
		v, err := strArg(args, f.key)
		if err != nil {
			return errText(err), nil
		}
		*f.dst = v
	}

	labelURL, err := t.client.CreateLabel(ctx, in)
	if err != nil {
		var mfe *types.MissingFieldError
		if errors.As(err, &mfe) {
			return labelNotFoundMessage, nil
		}
		return errText(err), nil
	}

	return labelURL, nil
}
