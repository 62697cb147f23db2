// ABOUTME: CLI commands for the daily calorie goal.
// ABOUTME: Shows the goal, retries the Gemini suggestion, or sets it manually.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or update the daily calorie goal",
	Long: `Show the daily calorie goal, or update it without touching the
rest of the session. Use 'suggest' to retry the Gemini suggestion
when the goal went pending at login, or 'set' to pick a number
yourself.

EXAMPLES:

  nutri goal              # Show the current goal
  nutri goal suggest      # Ask Gemini again
  nutri goal set 2200     # Set it manually`,
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, err := repo.GetCalorieGoal()
		if err != nil {
			return fmt.Errorf("failed to read calorie goal: %w", err)
		}
		if goal == nil {
			fmt.Println("Calorie goal pending. Run 'nutri goal suggest' or 'nutri goal set <kcal>'.")
			return nil
		}
		fmt.Printf("Daily calorie goal: %d kcal\n", *goal)
		return nil
	},
}

var goalSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask Gemini for a calorie goal suggestion",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("no profile saved; run 'nutri login' first")
		}

		ctx, cancel := aiContext()
		defer cancel()

		collab, err := newCollaborator(ctx)
		if err != nil {
			return err
		}

		kcal, err := collab.SuggestCalorieGoal(ctx, profile)
		if err != nil {
			return fmt.Errorf("failed to get suggestion: %w", err)
		}
		if err := repo.SetCalorieGoal(kcal); err != nil {
			return fmt.Errorf("failed to save calorie goal: %w", err)
		}

		color.Green("✓ Daily calorie goal: %d kcal", kcal)
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set <kcal>",
	Short: "Set the calorie goal manually",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.Atoi(args[0])
		if err != nil || kcal <= 0 {
			return fmt.Errorf("invalid calorie goal: %s", args[0])
		}

		if err := repo.SetCalorieGoal(kcal); err != nil {
			return fmt.Errorf("failed to save calorie goal: %w", err)
		}

		color.Green("✓ Daily calorie goal: %d kcal", kcal)
		return nil
	},
}

func init() {
	goalCmd.AddCommand(goalSuggestCmd)
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}
