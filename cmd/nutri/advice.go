// ABOUTME: CLI command for AI meal advice.
// ABOUTME: Asks Gemini for next-meal suggestions from the profile and log.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var adviceCmd = &cobra.Command{
	Use:   "advice",
	Short: "Get meal suggestions from Gemini",
	Long: `Ask Gemini what to eat next, given your profile, today's meals,
and your water intake so far. Requires at least one logged meal and
a GEMINI_API_KEY in the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("no profile saved; run 'nutri login' first")
		}

		meals, err := repo.ListMeals(0)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}
		if len(meals) == 0 {
			return fmt.Errorf("no meals logged yet; log a meal first")
		}

		water, err := repo.GetWater(models.DayKey(time.Now()))
		if err != nil {
			return fmt.Errorf("failed to read water log: %w", err)
		}

		ctx, cancel := aiContext()
		defer cancel()

		collab, err := newCollaborator(ctx)
		if err != nil {
			return err
		}

		suggestions, err := collab.Advise(ctx, profile, meals, water)
		if err != nil {
			return fmt.Errorf("failed to get advice: %w", err)
		}

		bold := color.New(color.Bold)
		fmt.Println(bold.Sprint("Suggestions:"))
		for _, s := range suggestions {
			fmt.Printf("  • %s\n", s)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviceCmd)
}
