// ABOUTME: CLI command for the recent daily nutrient trend.
// ABOUTME: Shows per-day totals for the last N days that have meals.
package main

import (
	"fmt"

	"github.com/harperreed/nutri/internal/engine"
	"github.com/spf13/cobra"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show daily totals for recent days",
	Long: `Show per-day calorie and macro totals for the last N days that
have at least one meal logged. Days without meals are skipped, so a
7-day window over a sparse log can reach further back than a week.

EXAMPLES:

  nutri trend          # Last 7 days with data
  nutri trend -n 14    # Last 14 days with data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meals, err := repo.ListMeals(0)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		trend := engine.Trend(engine.DailyRollup(meals), trendDays)
		if len(trend) == 0 {
			fmt.Println("No meals logged yet.")
			return nil
		}

		printTrend(trend)
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVarP(&trendDays, "days", "n", engine.DefaultTrendWindow, "window size in days")
	rootCmd.AddCommand(trendCmd)
}
