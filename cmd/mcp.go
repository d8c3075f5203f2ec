package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/currhub/currhub/internal/curriculum"
	mcpserver "github.com/currhub/currhub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing curriculum flowchart, summary and program catalog tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := curriculum.DefaultCatalog()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "currhub MCP server started on stdio (programs=%d)\n", len(catalog.Programs))

		srv := mcpserver.NewServer(catalog)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
