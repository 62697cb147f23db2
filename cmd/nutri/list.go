// ABOUTME: CLI command for listing logged meals.
// ABOUTME: Shows ID prefix, timestamp, name, and headline nutrients per meal.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List logged meals",
	Long: `List recent meals from your log, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  NAME  CALORIES  MACROS

  The ID is an 8-character prefix you can use with 'nutri delete'.

EXAMPLES:

  nutri list          # Show last 20 meals
  nutri list -n 50    # Show last 50 meals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meals, err := repo.ListMeals(listLimit)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		if len(meals) == 0 {
			fmt.Println("No meals logged yet.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meals {
			n := m.Nutrients
			fmt.Printf("%s %s %s %4.0f kcal %s\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.LoggedAt.Format("2006-01-02 15:04")),
				padRight(truncate(n.MealName, 28), 28),
				n.Calories,
				faint.Sprintf("P%.0f C%.0f F%.0f", n.Protein, n.Carbs.Total, n.Fat.Total))
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}
