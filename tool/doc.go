// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package tool provides the base [Tool] struct that concrete tools embed and
// the [Registry] that dispatches incoming requests to them.
//
// A concrete tool embeds [*Tool] for its name, description and long-running
// flag, declares its input schema via GetDeclaration, and implements Run:
//
//	type JobStatusTool struct {
//		*tool.Tool
//		client *mailapi.Client
//	}
//
//	func (t *JobStatusTool) GetDeclaration() *genai.FunctionDeclaration {
//		return &genai.FunctionDeclaration{
//			Name:        t.Name(),
//			Description: t.Description(),
//			Parameters: &genai.Schema{
//				Type: genai.TypeObject,
//				Properties: map[string]*genai.Schema{
//					"job_id": {Type: genai.TypeString},
//				},
//			},
//		}
//	}
//
// Tools are registered once with a [Registry] and invoked independently and
// statelessly through [Registry.Dispatch].
package tool
