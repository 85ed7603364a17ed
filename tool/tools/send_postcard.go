// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"context"

	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/types"
)

// SendPostcardTool is a registered stub. The postcard payload shape is an
// open product question; until it is decided the tool answers with a fixed
// not-implemented message instead of an unknown-tool error.
type SendPostcardTool struct {
	*tool.Tool
}

var _ types.Tool = (*SendPostcardTool)(nil)

// NewSendPostcardTool returns the new [SendPostcardTool].
func NewSendPostcardTool() *SendPostcardTool {
	return &SendPostcardTool{
		Tool: tool.NewTool("send_postcard", "Send a postcard. Not yet implemented.", false),
	}
}

// GetDeclaration implements [types.Tool].
func (t *SendPostcardTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"postcard": {
					Type: genai.TypeString,
				},
				"document": {
					Type: genai.TypeString,
				},
			},
		},
	}
}

// Run implements [types.Tool].
func (t *SendPostcardTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	err := types.NotImplementedError("send_postcard is not implemented: the postcard payload shape is not yet defined")
	return errText(err), nil
}
