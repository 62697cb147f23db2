// ABOUTME: CLI command for logging meals via AI estimation.
// ABOUTME: Sends the description to Gemini and records the returned estimate.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var logAt string

var logCmd = &cobra.Command{
	Use:     "log <description>",
	Aliases: []string{"eat"},
	Short:   "Log a meal from a plain-text description",
	Long: `Log a meal. Describe what you ate in your own words; Gemini
estimates the nutritional content and the estimate is recorded as-is.

If the meal conflicts with a health concern on your profile (say, a
sugary dessert with pre-diabetes), a short reminder is printed after
the meal is saved. The reminder never blocks the log.

EXAMPLES:

  nutri log "two scrambled eggs and a slice of buttered toast"
  nutri log "large pepperoni pizza, about half of it"
  nutri log "chicken caesar salad" --at "2024-12-14 12:30"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")

		ctx, cancel := aiContext()
		defer cancel()

		collab, err := newCollaborator(ctx)
		if err != nil {
			return err
		}

		nutrients, err := collab.AnalyzeMeal(ctx, description)
		if err != nil {
			return fmt.Errorf("failed to analyze meal (try a more detailed description): %w", err)
		}

		m := models.NewMeal(description, *nutrients)
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			m.WithLoggedAt(t)
		}

		if err := repo.CreateMeal(m); err != nil {
			return fmt.Errorf("failed to save meal: %w", err)
		}

		color.Green("✓ Logged %s", nutrients.MealName)
		faint := color.New(color.Faint)
		fmt.Printf("  %s %.0f kcal · %.0fg protein · %.0fg carbs · %.0fg fat\n",
			faint.Sprint(m.ID.String()[:8]),
			nutrients.Calories, nutrients.Protein,
			nutrients.Carbs.Total, nutrients.Fat.Total)

		// Best-effort health reminder; failures stay silent.
		if profile, err := repo.GetProfile(); err == nil && len(profile.HealthConcerns) > 0 {
			if note, err := collab.MealFeedback(ctx, nutrients, profile); err == nil && note != "" {
				color.Yellow("! %s", note)
			}
		}

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	// Zone-less formats are read as local wall-clock time so the meal
	// groups under the day the user meant.
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	rootCmd.AddCommand(logCmd)
}
