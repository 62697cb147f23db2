// ABOUTME: CLI command for today's macronutrient split.
// ABOUTME: Shows gram totals and percentage shares for protein, carbs, and fat.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/engine"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Show today's macronutrient split",
	Long: `Show protein, carbs, and fat logged today, in grams and as a
share of the total. With no macro data for today there is nothing
to split and a placeholder is shown instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meals, err := repo.ListMeals(0)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		macros, ok := engine.MacroSplit(meals, models.DayKey(time.Now()))
		if !ok {
			fmt.Println("No macro data for today yet.")
			return nil
		}

		total := macros.Protein + macros.Carbs + macros.Fat
		faint := color.New(color.Faint)
		fmt.Printf("Protein  %5.0f g  %s\n", macros.Protein, faint.Sprintf("%.0f%%", macros.Protein/total*100))
		fmt.Printf("Carbs    %5.0f g  %s\n", macros.Carbs, faint.Sprintf("%.0f%%", macros.Carbs/total*100))
		fmt.Printf("Fat      %5.0f g  %s\n", macros.Fat, faint.Sprintf("%.0f%%", macros.Fat/total*100))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(macrosCmd)
}
