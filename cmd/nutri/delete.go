// ABOUTME: CLI command for deleting logged meals.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged meal",
	Long: `Delete a meal by its ID or ID prefix.

You can use either the full UUID or just the first few characters.
The ID prefix is shown in the first column of 'nutri list' output.

EXAMPLES:

  nutri delete abc12345     # Delete by 8-char prefix
  nutri rm abc1             # Short prefix (if unique)

CAUTION:

  This permanently deletes the meal. There is no undo.
  If the prefix matches multiple meals, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// Look the meal up first to show what is being deleted
		meal, err := repo.GetMeal(idOrPrefix)
		if err != nil {
			return fmt.Errorf("meal not found: %s", idOrPrefix)
		}

		if err := repo.DeleteMeal(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		color.Yellow("✗ Deleted %s", meal.Nutrients.MealName)
		fmt.Printf("  %s %.0f kcal\n",
			color.New(color.Faint).Sprint(meal.ID.String()[:8]),
			meal.Nutrients.Calories)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
