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

// statusNotFoundMessage is the fixed message for a status response without a
// description field.
const statusNotFoundMessage = "Status description not found."

// JobStatusTool queries the mail vendor for the free-text status of a job.
type JobStatusTool struct {
	*tool.Tool

	client *mailapi.Client
}

var _ types.Tool = (*JobStatusTool)(nil)

// NewJobStatusTool returns the new [JobStatusTool] backed by client.
func NewJobStatusTool(client *mailapi.Client) *JobStatusTool {
	return &JobStatusTool{
		Tool:   tool.NewTool("job_status", "Get the current status description of a mail job.", false),
		client: client,
	}
}

// GetDeclaration implements [types.Tool].
func (t *JobStatusTool) GetDeclaration() *genai.FunctionDeclaration {
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
func (t *JobStatusTool) Run(ctx context.Context, args map[string]any, toolCtx *types.ToolContext) (any, error) {
	jobID, err := strArg(args, "job_id")
	if err != nil {
		return errText(err), nil
	}

	description, err := t.client.JobStatus(ctx, toolCtx.MailCredential(), jobID)
	if err != nil {
		var mfe *types.MissingFieldError
		if errors.As(err, &mfe) {
			return statusNotFoundMessage, nil
		}
		return errText(err), nil
	}

	return description, nil
}
