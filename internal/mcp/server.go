// Package mcp serves the fermentation model as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

type toolServerRunner func(ctx context.Context, server *mcp.Server) error

// RunToolServer starts the MCP tool server over stdio.
func RunToolServer(ctx context.Context, version string) error {
	return runToolServer(ctx, version, defaultToolServerRunner)
}

// runToolServer builds the tool server and runs it using the provided runner.
func runToolServer(ctx context.Context, version string, runner toolServerRunner) error {
	if runner == nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, errors.New(messages.McpRunnerNil))
	}
	if err := runner(ctx, NewServer(version)); err != nil {
		return fmt.Errorf(messages.McpRunServerFailedFmt, err)
	}
	return nil
}

// defaultToolServerRunner runs the tool server over stdio.
func defaultToolServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

// NewServer returns a server with every fermentation tool registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    messages.McpServerName,
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolEvaluate, Description: messages.McpToolEvaluateDesc}, evaluateHandler)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolPredict, Description: messages.McpToolPredictDesc}, predictHandler)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolClassify, Description: messages.McpToolClassifyDesc}, classifyHandler)
	mcp.AddTool(server, &mcp.Tool{Name: messages.McpToolSimulate, Description: messages.McpToolSimulateDesc}, simulateHandler)
	return server
}
