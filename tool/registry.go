// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	deepcopy "github.com/tiendc/go-deepcopy"

	"github.com/go-a2a/mailbridge/pkg/logging"
	"github.com/go-a2a/mailbridge/types"
)

// CredentialArg is the reserved argument key carrying the caller's
// pre-encoded mail vendor credential. The dispatcher lifts it out of the
// argument map and into the [types.ToolContext] before the tool runs.
const CredentialArg = "auth"

// Registry is the single request dispatcher for mailbridge tools.
//
// Every tool call runs to completion before Dispatch returns; there is no
// background work and no shared mutable state between invocations. Register
// all tools before the first Dispatch: the registry is not safe for
// concurrent registration.
type Registry struct {
	tools map[string]types.Tool
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]types.Tool),
	}
}

// Register adds the given tools to the registry.
func (r *Registry) Register(tools ...types.Tool) error {
	for _, t := range tools {
		if _, ok := r.tools[t.Name()]; ok {
			return fmt.Errorf("tool %q is already registered", t.Name())
		}
		r.tools[t.Name()] = t
	}
	return nil
}

// Tools returns the registered tools sorted by name.
func (r *Registry) Tools() []types.Tool {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]types.Tool, len(names))
	for i, name := range names {
		tools[i] = r.tools[name]
	}
	return tools
}

// Dispatch looks up the named tool and runs it with the given arguments.
//
// The caller's argument map is deep-copied before the tool sees it, so a
// tool can never mutate caller state. The reserved [CredentialArg] entry is
// removed from the copy and carried on the [types.ToolContext] instead.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %q", name)
	}

	argsToCall := make(map[string]any, len(args))
	if len(args) > 0 {
		if err := deepcopy.Copy(&argsToCall, args); err != nil {
			return nil, fmt.Errorf("copy arguments for tool %q: %w", name, err)
		}
	}

	logger := logging.FromContext(ctx)
	toolCtx := types.NewToolContext(logger)
	if cred, ok := argsToCall[CredentialArg].(string); ok {
		toolCtx = toolCtx.WithMailCredential(cred)
		delete(argsToCall, CredentialArg)
	}

	logger.DebugContext(ctx, "dispatching tool call",
		slog.String("tool", name),
		slog.String("invocation_id", toolCtx.InvocationID()),
	)

	return t.Run(ctx, argsToCall, toolCtx)
}
