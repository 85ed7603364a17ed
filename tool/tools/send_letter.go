// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/internal/mailapi"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/types"
)

// SendLetterTool submits a letter through the mail vendor's four-step
// pipeline: upload document, create address list, create job, submit job.
type SendLetterTool struct {
	*tool.Tool

	client *mailapi.Client
}

var _ types.Tool = (*SendLetterTool)(nil)

// NewSendLetterTool returns the new [SendLetterTool] backed by client.
//
// The tool is long running in the vendor's sense: a successful call returns
// a job id while the letter itself goes through production later.
func NewSendLetterTool(client *mailapi.Client) *SendLetterTool {
	description := heredoc.Doc(`
		Send a letter to a single recipient.

		The document is uploaded, an address list is created for the
		recipient, and a print job combining both is created and submitted.
		Returns a confirmation containing the job id.
	`)

	return &SendLetterTool{
		Tool:   tool.NewTool("send_letter", description, true),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *SendLetterTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"document": {
					Type:        genai.TypeString,
					Description: "Path to the document file, or the literal document content",
				},
				"letter_format": {
					Type:        genai.TypeString,
					Description: `Document format tag, e.g. "PDF"`,
				},
				"recipient_name": {
					Type: genai.TypeString,
				},
				"address_line": {
					Type: genai.TypeString,
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
			Required: []string{"document", "letter_format", "recipient_name", "address_line", "locality", "postal_code"},
		},
	}
}

// Run implements [types.Tool].
func (t *SendLetterTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	document, err := strArg(args, "document")
	if err != nil {
		return errText(err), nil
	}
	letterFormat, err := strArg(args, "letter_format")
	if err != nil {
		return errText(err), nil
	}
	recipientName, err := strArg(args, "recipient_name")
	if err != nil {
		return errText(err), nil
	}
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

	name, content, err := resolveDocument(document)
	if err != nil {
		return errText(err), nil
	}

	confirmation, err := t.client.SendLetter(ctx, toolCtx.MailCredential(), mailapi.LetterInput{
		Document: mailapi.UploadInput{
			Name:    name,
			Format:  letterFormat,
			Content: content,
		},
		Recipient: mailapi.Recipient{
			Name:        recipientName,
			AddressLine: addressLine,
			Locality:    locality,
			PostalCode:  postalCode,
			RegionCode:  optStrArg(args, "region_code", "US"),
		},
	})
	if err != nil {
		return errText(err), nil
	}

	return fmt.Sprintf("Successfully %s.", confirmation), nil
}

// resolveDocument turns the caller's document reference into upload content.
// A reference naming a readable file is read from disk; anything else is
// treated as literal document content.
func resolveDocument(ref string) (name string, content []byte, err error) {
	if info, statErr := os.Stat(ref); statErr == nil && !info.IsDir() {
		content, err = os.ReadFile(ref)
		if err != nil {
			return "", nil, fmt.Errorf("read document %s: %w", ref, err)
		}
		return filepath.Base(ref), content, nil
	}
	return "letter", []byte(ref), nil
}
