// ABOUTME: Root Cobra command for nutri CLI.
// ABOUTME: Handles storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/ai"
	"github.com/harperreed/nutri/internal/config"
	"github.com/harperreed/nutri/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg  *config.Config
	repo storage.Repository

	flagDataDir string
	flagBackend string
)

var rootCmd = &cobra.Command{
	Use:   "nutri",
	Short: "AI-assisted personal nutrition tracker",
	Long: `Nutri is a CLI tool for tracking what you eat.

Describe a meal in plain words and Gemini estimates its nutritional
content. Nutri keeps the log, rolls it up per day, and tracks your
progress against a personalized calorie goal.

QUICK START:

  $ nutri login --name Alex --goal maintenance --height 175 --weight 70
  $ nutri log "two scrambled eggs and a slice of toast"
  $ nutri water add                  # One more glass of water
  $ nutri summary                    # Today's dashboard
  $ nutri trend                      # Last 7 days of totals

AI FEATURES:

  Meal analysis, calorie goal suggestion, and meal advice call the
  Gemini API. Set GEMINI_API_KEY in your environment.

  $ nutri log "chicken burrito"      # Estimate and record a meal
  $ nutri advice                     # What to eat next

STORAGE:

  Meals are stored in SQLite at ~/.local/share/nutri/nutri.db by
  default. Set backend "charm" in the config to sync across devices
  via Charm Cloud instead (E2E encrypted with your SSH key).

  $ nutri migrate --to charm         # Move local data into Charm KV
  $ nutri export json -o backup.json # Back up everything

MCP INTEGRATION:

  Run 'nutri mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "nutri": { "command": "nutri", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		switch cmd.Name() {
		case "version", "help", "completion", "migrate":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// newCollaborator builds the Gemini client from the environment.
func newCollaborator(ctx context.Context) (ai.Collaborator, error) {
	key := config.APIKey()
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set (AI features need a Gemini API key)")
	}
	return ai.NewGemini(ctx, key, cfg.GetModel())
}

// aiContext bounds a single Gemini call.
func aiContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/nutri)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: sqlite or charm")
}
