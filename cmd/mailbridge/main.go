// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Command mailbridge serves the mailbridge tools over MCP stdio.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	"github.com/go-a2a/mailbridge"
	"github.com/go-a2a/mailbridge/internal/addressvalidation"
	"github.com/go-a2a/mailbridge/internal/mailapi"
	"github.com/go-a2a/mailbridge/internal/shiplabel"
	"github.com/go-a2a/mailbridge/pkg/logging"
	"github.com/go-a2a/mailbridge/tool"
	"github.com/go-a2a/mailbridge/tool/tools"
)

func main() {
	logger := logging.NewLogger(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(logging.NewContext(context.Background(), logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("mailbridge exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg := configFromEnv()

	reg, err := buildRegistry(ctx, cfg)
	if err != nil {
		return err
	}

	srv := server.NewMCPServer("mailbridge", mailbridge.Version, server.WithToolCapabilities(false))
	for _, t := range reg.Tools() {
		mcpTool, err := bridgeTool(t)
		if err != nil {
			return fmt.Errorf("bridge tool %q: %w", t.Name(), err)
		}
		srv.AddTool(mcpTool, toolHandler(reg, t.Name()))
	}

	logger.InfoContext(ctx, "serving tools over stdio", slog.Int("tools", len(reg.Tools())))

	g, gctx := errgroup.WithContext(ctx)
	stdio := server.NewStdioServer(srv)
	g.Go(func() error {
		return stdio.Listen(gctx, os.Stdin, os.Stdout)
	})
	return g.Wait()
}

// buildRegistry wires every client from its explicit configuration and
// registers the seven tools.
func buildRegistry(ctx context.Context, cfg config) (*tool.Registry, error) {
	mailClient, err := mailapi.NewClient(mailapi.Config{
		BaseURL: cfg.mailBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("mail vendor client: %w", err)
	}

	labelClient, err := shiplabel.NewClient(ctx, shiplabel.Config{
		Token:            cfg.labelToken,
		CarrierAccountID: cfg.labelCarrierAccount,
		BaseURL:          cfg.labelBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("shipping label client: %w", err)
	}

	validationClient, err := addressvalidation.NewClient(addressvalidation.Config{
		APIKey:  cfg.validationAPIKey,
		BaseURL: cfg.validationBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("address validation client: %w", err)
	}

	reg := tool.NewRegistry()
	if err := reg.Register(
		tools.NewValidateAddressTool(validationClient),
		tools.NewCreateShippingLabelTool(labelClient),
		tools.NewSendLetterTool(mailClient),
		tools.NewSendPostcardTool(),
		tools.NewJobStatusTool(mailClient),
		tools.NewViewProofTool(mailClient),
		tools.NewCheckBalanceTool(mailClient),
	); err != nil {
		return nil, err
	}
	return reg, nil
}

// toolHandler adapts one registered tool to the MCP handler contract.
// Vendor-side failures arrive here as text results already; only
// dispatcher-level errors become MCP error results.
func toolHandler(reg *tool.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := reg.Dispatch(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if s, ok := out.(string); ok {
			return mcp.NewToolResultText(s), nil
		}
		data, err := sonic.ConfigFastest.Marshal(out)
		if err != nil {
			return nil, fmt.Errorf("encode result of %q: %w", name, err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}
