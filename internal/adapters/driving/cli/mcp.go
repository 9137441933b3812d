package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/canopy-cli/internal/adapters/driving/mcp"
)

var (
	mcpPort       int
	mcpProvider   string
	mcpDimensions int
	mcpAPIKey     string
	mcpTable      string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for serving the article index over the Model Context Protocol.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Serve the article index over the Model Context Protocol.

The server speaks JSON-RPC over stdio by default, which is what MCP
clients such as Claude Desktop expect. Pass --port to expose the same
server over streamable HTTP instead, for the MCP Inspector or other
remote clients.

Examples:
  # Stdio transport (Claude Desktop)
  canopy mcp serve

  # HTTP transport on port 8080 (MCP Inspector)
  canopy mcp serve --port 8080 --provider gemini

Claude Desktop registers the server through claude_desktop_config.json:
  {
    "mcpServers": {
      "canopy": {
        "command": "/path/to/canopy",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().StringVarP(&mcpTable, "table", "t", "", "table to serve (default from config)")
	mcpServeCmd.Flags().StringVar(&mcpProvider, "provider", "", "embedding provider: local, gemini or openai")
	mcpServeCmd.Flags().IntVarP(&mcpDimensions, "dimensions", "d", 0, "embedding dimensions")
	mcpServeCmd.Flags().StringVar(&mcpAPIKey, "api-key", "", "API key for remote providers")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Search:   searchService,
		Articles: articleService,
	}, mcp.Options{
		Table:     resolveTable(mcpTable),
		Embedding: resolveEmbeddingOptions(mcpProvider, mcpDimensions, mcpAPIKey),
	})
	if err != nil {
		return err
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
