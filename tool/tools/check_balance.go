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

// balanceNotFoundMessage is the fixed message for a balance response without
// a balance field. A balance of zero is a value, never this message.
const balanceNotFoundMessage = "Balance not found."

// CheckBalanceTool queries the mail vendor account balance.
type CheckBalanceTool struct {
	*tool.Tool

	client *mailapi.Client
}

var _ types.Tool = (*CheckBalanceTool)(nil)

// NewCheckBalanceTool returns the new [CheckBalanceTool] backed by client.
func NewCheckBalanceTool(client *mailapi.Client) *CheckBalanceTool {
	return &CheckBalanceTool{
		Tool:   tool.NewTool("check_balance", "Check the mail vendor account balance.", false),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *CheckBalanceTool) GetDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
	}
}

// Run implements [types.Tool].
func (t *CheckBalanceTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	balance, err := t.client.Balance(ctx, toolCtx.MailCredential())
	if err != nil {
		var mfe *types.MissingFieldError
		if errors.As(err, &mfe) {
			return balanceNotFoundMessage, nil
		}
		return errText(err), nil
	}

	return balance, nil
}
