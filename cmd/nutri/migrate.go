// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies everything from the current backend into the other one.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/config"
	"github.com/harperreed/nutri/internal/storage"
	"github.com/spf13/cobra"
)

var migrateTo string

var migrateCmd = &cobra.Command{
	Use:   "migrate --to <backend>",
	Short: "Move data between sqlite and charm backends",
	Long: `Copy all data from the current backend into the other one.

Use this when switching from local SQLite storage to Charm Cloud
sync, or back. The source data is left untouched; switch the
backend in your config (or with --backend) once the copy succeeds.

BACKENDS:

  sqlite   Local database at ~/.local/share/nutri/nutri.db
  charm    Charm KV, synced and E2E encrypted with your SSH key

EXAMPLES:

  nutri migrate --to charm     # Copy local data into Charm KV
  nutri migrate --to sqlite    # Copy Charm data into local SQLite

Existing entries in the destination with the same meal ID cause an
error; migrate into a fresh backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateTo != "sqlite" && migrateTo != "charm" {
			return fmt.Errorf("unknown backend: %s (use sqlite or charm)", migrateTo)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if cfg.GetBackend() == migrateTo {
			return fmt.Errorf("already using the %s backend", migrateTo)
		}

		src, err := cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open source backend: %w", err)
		}
		defer src.Close()

		dstCfg := *cfg
		dstCfg.Backend = migrateTo
		dst, err := dstCfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open destination backend: %w", err)
		}
		defer dst.Close()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated to %s", migrateTo)
		if summary.Profile {
			fmt.Println("  profile copied")
		}
		fmt.Printf("  %d meals, %d water days", summary.Meals, summary.WaterDays)
		if summary.Goal {
			fmt.Print(", calorie goal")
		}
		fmt.Println()
		fmt.Printf("\nSwitch over with: nutri --backend %s summary\n", migrateTo)

		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend: sqlite or charm")
	_ = migrateCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(migrateCmd)
}
