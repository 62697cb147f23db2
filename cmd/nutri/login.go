// ABOUTME: CLI commands for profile setup and teardown.
// ABOUTME: login saves the profile and requests a calorie goal; logout wipes all data.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/nutri/internal/models"
	"github.com/spf13/cobra"
)

var (
	loginName     string
	loginGoal     string
	loginConcerns []string
	loginDetails  string
	loginHeight   float64
	loginWeight   float64
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Set up your nutrition profile",
	Long: `Set up (or replace) your nutrition profile.

The profile drives everything downstream: BMI, the suggested calorie
goal, and the health awareness in meal feedback and advice.

GOALS:

  weight-loss, weight-gain, maintenance, medical-needs

HEALTH CONCERNS (repeatable):

  diabetes, pre-diabetes, high-cholesterol, hypertension, anemia,
  vitamin-d-deficiency, vitamin-b12-deficiency, pcos

EXAMPLES:

  nutri login --name Alex --goal maintenance --height 175 --weight 70
  nutri login --name Sam --goal weight-loss --height 160 --weight 82 \
      --concern pre-diabetes --concern hypertension \
      --details "vegetarian, trains 3x a week"

Logging in starts a fresh session: any existing meal log, water log,
and calorie goal are cleared along with the old profile.

After saving, nutri asks Gemini for a personalized daily calorie goal.
If the request fails the profile is kept and the goal stays pending;
run 'nutri goal suggest' later to retry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidGoal(loginGoal) {
			return fmt.Errorf("unknown goal: %s\nValid goals: weight-loss, weight-gain, maintenance, medical-needs", loginGoal)
		}

		concerns := make([]models.HealthConcern, 0, len(loginConcerns))
		for _, c := range loginConcerns {
			if !models.IsValidHealthConcern(c) {
				return fmt.Errorf("unknown health concern: %s", c)
			}
			concerns = append(concerns, models.HealthConcern(c))
		}

		profile := &models.UserProfile{
			Name:           loginName,
			Goal:           models.Goal(loginGoal),
			HealthConcerns: concerns,
			Details:        loginDetails,
			Height:         loginHeight,
			Weight:         loginWeight,
		}
		if err := profile.Validate(); err != nil {
			return err
		}

		// A login starts a fresh session
		if err := repo.Reset(); err != nil {
			return fmt.Errorf("failed to reset session: %w", err)
		}
		if err := repo.SaveProfile(profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile saved for %s", profile.Name)
		fmt.Printf("  %s, %.0f cm, %.1f kg\n",
			models.GoalLabels[profile.Goal], profile.Height, profile.Weight)

		// Goal suggestion is best-effort; the profile stands either way.
		ctx, cancel := aiContext()
		defer cancel()

		collab, err := newCollaborator(ctx)
		if err != nil {
			color.Yellow("! Calorie goal pending: %v", err)
			return nil
		}

		kcal, err := collab.SuggestCalorieGoal(ctx, profile)
		if err != nil {
			color.Yellow("! Calorie goal pending: %v", err)
			return nil
		}
		if err := repo.SetCalorieGoal(kcal); err != nil {
			return fmt.Errorf("failed to save calorie goal: %w", err)
		}

		color.Green("✓ Daily calorie goal: %d kcal", kcal)
		return nil
	},
}

var logoutForce bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Delete your profile and all logged data",
	Long: `Delete the profile, every logged meal, the water log, and the
calorie goal. This is a full reset; there is no undo.

Run 'nutri export json -o backup.json' first if you want a backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !logoutForce {
			return fmt.Errorf("this deletes all data; re-run with --force to confirm")
		}

		if err := repo.Reset(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}

		color.Yellow("✗ All data deleted")
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the saved profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := repo.GetProfile()
		if err != nil {
			return fmt.Errorf("no profile saved; run 'nutri login' first")
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(profile.Name))
		fmt.Printf("  Goal:    %s\n", models.GoalLabels[profile.Goal])
		fmt.Printf("  Height:  %.0f cm\n", profile.Height)
		fmt.Printf("  Weight:  %.1f kg\n", profile.Weight)
		if len(profile.HealthConcerns) > 0 {
			labels := make([]string, len(profile.HealthConcerns))
			for i, c := range profile.HealthConcerns {
				labels[i] = models.ConcernLabels[c]
			}
			fmt.Printf("  Health:  %s\n", strings.Join(labels, ", "))
		}
		if profile.Details != "" {
			fmt.Printf("  Details: %s\n", faint.Sprint(profile.Details))
		}

		goal, err := repo.GetCalorieGoal()
		if err != nil {
			return fmt.Errorf("failed to read calorie goal: %w", err)
		}
		if goal != nil {
			fmt.Printf("  Target:  %d kcal/day\n", *goal)
		} else {
			fmt.Printf("  Target:  %s\n", faint.Sprint("pending"))
		}

		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginName, "name", "", "your name")
	loginCmd.Flags().StringVar(&loginGoal, "goal", "maintenance", "nutrition goal")
	loginCmd.Flags().StringArrayVar(&loginConcerns, "concern", nil, "health concern tag (repeatable)")
	loginCmd.Flags().StringVar(&loginDetails, "details", "", "free-text dietary context")
	loginCmd.Flags().Float64Var(&loginHeight, "height", 0, "height in cm")
	loginCmd.Flags().Float64Var(&loginWeight, "weight", 0, "weight in kg")
	_ = loginCmd.MarkFlagRequired("name")
	_ = loginCmd.MarkFlagRequired("height")
	_ = loginCmd.MarkFlagRequired("weight")

	logoutCmd.Flags().BoolVar(&logoutForce, "force", false, "confirm deletion")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)
}
