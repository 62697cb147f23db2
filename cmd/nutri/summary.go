// ABOUTME: CLI command for the daily dashboard.
// ABOUTME: Renders calories, goal progress, macros, BMI, water, and the trend.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/engine"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"today", "s"},
	Short:   "Show today's nutrition dashboard",
	Long: `Show the full dashboard for today: calories against the goal,
macro split, BMI, water intake, and the recent daily trend.

The progress bar caps at 100%; the label keeps the exact percentage,
with a note when you are over the goal. While the calorie goal is
still pending the progress line shows a placeholder instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := repo.LoadSession()
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}
		if session.Profile == nil {
			return fmt.Errorf("no profile saved; run 'nutri login' first")
		}

		summary, err := engine.Summarize(session, models.DayKey(time.Now()), engine.DefaultTrendWindow)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		fmt.Printf("%s %s\n\n", bold.Sprint(session.Profile.Name), faint.Sprint(summary.Date))

		// Calories vs goal
		fmt.Printf("Calories  %.0f", summary.Calories)
		if summary.CalorieGoal != nil {
			fmt.Printf(" / %d kcal\n", *summary.CalorieGoal)
			p := summary.Progress
			fmt.Printf("          %s %s\n", progressBar(p.Clamped, 20), progressLabel(*p))
		} else {
			fmt.Printf(" kcal %s\n", faint.Sprint("(goal pending; run 'nutri goal suggest' to retry)"))
		}

		// Macros
		if summary.Macros != nil {
			m := summary.Macros
			fmt.Printf("Macros    P %.0fg · C %.0fg · F %.0fg\n", m.Protein, m.Carbs, m.Fat)
		} else {
			fmt.Printf("Macros    %s\n", faint.Sprint("no meals today"))
		}

		// BMI
		fmt.Printf("BMI       %.1f %s\n", summary.BMI, bmiColor(summary.BMICategory)("(%s)", summary.BMICategory))

		// Water
		fmt.Printf("Water     %d/%d glasses %s\n",
			summary.WaterToday, summary.WaterGoal,
			waterBar(summary.WaterToday, summary.WaterGoal))

		// Trend
		if len(summary.Trend) > 0 {
			fmt.Println()
			fmt.Println(faint.Sprint("Recent days:"))
			printTrend(summary.Trend)
		}

		return nil
	},
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func progressLabel(p engine.Progress) string {
	label := fmt.Sprintf("%.0f%%", p.Raw)
	if p.OverGoal() {
		return color.YellowString("%s over goal", label)
	}
	return label
}

func bmiColor(cat engine.BMICategory) func(format string, a ...interface{}) string {
	switch cat {
	case engine.NormalWeight:
		return color.GreenString
	case engine.Obesity:
		return color.RedString
	default:
		return color.YellowString
	}
}

func printTrend(trend []engine.DayTotals) {
	for _, d := range trend {
		fmt.Printf("  %s  %5.0f kcal  P%3.0f C%3.0f F%3.0f\n",
			d.Date, d.Calories, d.Protein, d.Carbs, d.Fat)
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
