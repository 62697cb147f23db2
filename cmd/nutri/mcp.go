// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/nutri/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

The assistant supplies its own nutrient estimates when logging meals
through MCP, so the server runs fine without a Gemini API key.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "nutri": {
        "command": "nutri",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_meal      Record a meal with its nutrient estimate
  list_meals    List recent meals
  delete_meal   Delete a meal by ID
  log_water     Add or remove glasses of water for today
  get_summary   Today's dashboard
  get_trend     Daily totals for recent days

AVAILABLE RESOURCES:

  nutrition://summary/today   Today's dashboard
  nutrition://meals/recent    Last 10 meals
  nutrition://water/today     Today's water count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
