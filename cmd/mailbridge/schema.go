// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
	"google.golang.org/genai"

	"github.com/go-a2a/mailbridge/types"
)

// bridgeTool converts a mailbridge tool declaration into an MCP tool.
func bridgeTool(t types.Tool) (mcp.Tool, error) {
	decl := t.GetDeclaration()

	schema, err := sonic.ConfigFastest.Marshal(toJSONSchema(decl.Parameters))
	if err != nil {
		return mcp.Tool{}, err
	}

	return mcp.NewToolWithRawSchema(decl.Name, decl.Description, schema), nil
}

// toJSONSchema converts a [*genai.Schema] into plain JSON Schema. The genai
// type constants are SCREAMING_CASE ("STRING", "OBJECT"); JSON Schema wants
// them lowercase.
func toJSONSchema(s *genai.Schema) map[string]any {
	if s == nil {
		return map[string]any{"type": "object"}
	}

	out := make(map[string]any)
	if s.Type != genai.TypeUnspecified {
		out["type"] = strings.ToLower(string(s.Type))
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Properties != nil {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = toJSONSchema(prop)
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	if s.Items != nil {
		out["items"] = toJSONSchema(s.Items)
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	return out
}
