package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/mcp"
	"github.com/sifria-labs/mafteah-cli/internal/core/services"
)

var mcpIndexPath string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
the corpus.

By default the server communicates over stdio using JSON-RPC. The index
is reopened automatically when a rebuild replaces it, so the server can
stay up across builds.

Use --http to serve over HTTP instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access

Examples:
  # Stdio mode (default, for desktop assistants)
  mafteah mcp serve

  # HTTP mode
  mafteah mcp serve --http localhost:8080

Desktop assistant configuration:
  {
    "mcpServers": {
      "mafteah": {
        "command": "/path/to/mafteah",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().String("http", "", "HTTP listen address (empty = use stdio)")
	mcpServeCmd.Flags().StringVar(&mcpIndexPath, "index", "", "index path (default ~/.mafteah/index.bleve)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	httpAddr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	indexPath, err := resolveIndexPath(mcpIndexPath)
	if err != nil {
		return fmt.Errorf("resolving index path: %w", err)
	}

	engine, err := openReloadingEngine(indexPath)
	if err != nil {
		return err
	}
	defer engine.Close()

	ports := &mcp.Ports{
		Search: services.NewSearchService(engine),
		Index:  engine,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if httpAddr != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", httpAddr)
		return server.RunHTTP(cmd.Context(), httpAddr)
	}

	return server.Run(cmd.Context())
}
