package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Tools:
  convert_document        Docs API JSON to Markdown
  get_document_markdown   fetch a document by ID or URL as Markdown
  list_documents          list Google Docs in Drive

Examples:
  # Stdio mode (default)
  docsmd mcp

  # HTTP mode (for MCP Inspector, remote access)
  docsmd mcp --http localhost:8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "docsmd": {
        "command": "/path/to/docsmd",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Export: a.export})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.PrintErrf("MCP server listening on http://%s\n", mcpHTTPAddr)
		if err := server.RunHTTP(cmd.Context(), mcpHTTPAddr); err != nil {
			return fmt.Errorf("mcp http: %w", err)
		}
		return nil
	}

	return server.Run(cmd.Context())
}
