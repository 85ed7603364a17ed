// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/internal/mailapi"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/types"
)

// proofNotFoundMessage is the fixed message for a proof response without a
// statusUrl field.
const proofNotFoundMessage = "Proof URL not found."

// ViewProofTool fetches the URL where the proof of a mail job can be viewed.
type ViewProofTool struct {
	*tool.Tool

	client *mailapi.Client
}

var _ types.Tool = (*ViewProofTool)(nil)

// NewViewProofTool returns the new [ViewProofTool] backed by client.
func NewViewProofTool(client *mailapi.Client) *ViewProofTool {
	return &ViewProofTool{
		Tool:   tool.NewTool("view_proof", "Get the URL for viewing the proof of a mail job.", false),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *ViewProofTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"job_id": {
					Type:        genai.TypeString,
					Description: "Opaque id of the mail job",
				},
			},
			Required: []string{"job_id"},
		},
	}
}

// Run implements [types.Tool].
func (t *ViewProofTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	jobID, err := strArg(args, "job_id")
	if err != nil {
		return errText(err), nil
	}

	proofURL, err := t.client.ProofURL(ctx, toolCtx.MailCredential(), jobID)
	if err != nil {
		var mfe *types.MissingFieldError
		if errors.As(err, &mfe) {
			return proofNotFoundMessage, nil
		}
		return errText(err), nil
	}

	return proofURL, nil
}
