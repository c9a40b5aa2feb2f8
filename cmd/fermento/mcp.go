package main

import (
	"github.com/spf13/cobra"

	"github.com/alsnogtix/simuladorFermentacao/internal/mcp"
	"github.com/alsnogtix/simuladorFermentacao/internal/messages"
)

var runToolServer = mcp.RunToolServer

func newMcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:    messages.McpUse,
		Short:  messages.McpShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolServer(cmd.Context(), Version)
		},
	}
}
