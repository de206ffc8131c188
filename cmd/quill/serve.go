// Package main provides the entry point for the quill CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	quillmcp "github.com/quillcv/quill/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run quill as a Model Context Protocol (MCP) server over stdio.

This exposes the CV pipeline as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "quill": {
        "command": "quill",
        "args": ["serve"]
      }
    }
  }

Available tools: status, preview, build`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pipe, err := newPipeline(configFlag(cmd))
			if err != nil {
				return err
			}
			server := quillmcp.NewServer(buildVersion(), pipe)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
