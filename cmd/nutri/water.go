// ABOUTME: CLI commands for the daily water log.
// ABOUTME: Shows, adds, and removes glasses for today with a floor at zero.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Show or update today's water intake",
	Long: `Track glasses of water per day against a goal of 8 glasses.

Days with no water logged simply don't appear in the log; removing
the last glass of a day drops the day entirely.

EXAMPLES:

  nutri water             # Show today's count
  nutri water add         # +1 glass
  nutri water add 3       # +3 glasses
  nutri water remove      # -1 glass (never below zero)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := models.DayKey(time.Now())
		glasses, err := repo.GetWater(today)
		if err != nil {
			return fmt.Errorf("failed to read water log: %w", err)
		}
		printWater(glasses)
		return nil
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add [n]",
	Short: "Add glasses of water for today",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjustWater(args, 1)
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:     "remove [n]",
	Aliases: []string{"rm"},
	Short:   "Remove glasses of water for today",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return adjustWater(args, -1)
	},
}

func adjustWater(args []string, sign int) error {
	n := 1
	if len(args) == 1 {
		var err error
		n, err = strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid glass count: %s", args[0])
		}
	}

	today := models.DayKey(time.Now())
	current, err := repo.GetWater(today)
	if err != nil {
		return fmt.Errorf("failed to read water log: %w", err)
	}

	updated := max(current+sign*n, 0)
	if err := repo.SetWater(today, updated); err != nil {
		return fmt.Errorf("failed to update water log: %w", err)
	}

	printWater(updated)
	return nil
}

func printWater(glasses int) {
	bar := waterBar(glasses, models.DefaultWaterGoal)
	if glasses >= models.DefaultWaterGoal {
		color.Green("✓ Water: %d/%d glasses %s", glasses, models.DefaultWaterGoal, bar)
	} else {
		fmt.Printf("Water: %d/%d glasses %s\n", glasses, models.DefaultWaterGoal, bar)
	}
}

func waterBar(glasses, goal int) string {
	filled := min(glasses, goal)
	return strings.Repeat("●", filled) + strings.Repeat("○", goal-filled)
}

func init() {
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterRemoveCmd)
	rootCmd.AddCommand(waterCmd)
}
