// ABOUTME: Combined derived view over one session for rendering.
// ABOUTME: Pulls rollup, trend, macros, progress, BMI, and water into one struct.
package engine

import (
	"errors"
	"fmt"

	"github.com/harperreed/nutri/internal/models"
)

// Summary is everything the dashboard surfaces derive from a session on a
// given day. Pointer fields are nil when their input is pending or absent.
type Summary struct {
	Date        string
	Calories    float64
	CalorieGoal *int
	Progress    *Progress // nil while the goal is pending
	Macros      *MacroTotals
	Trend       []DayTotals
	BMI         float64
	BMICategory BMICategory
	WaterToday  int
	WaterGoal   int
}

// Summarize recomputes the full derived view from a session. It is safe to
// call repeatedly and redundantly; there is no memoized state. A session
// without a profile is invalid input.
func Summarize(s *models.Session, today string, trendWindow int) (*Summary, error) {
	if s == nil || s.Profile == nil {
		return nil, errors.New("session has no profile")
	}

	bmi, err := BMI(s.Profile.Height, s.Profile.Weight)
	if err != nil {
		return nil, fmt.Errorf("bmi: %w", err)
	}

	sum := &Summary{
		Date:        today,
		Calories:    TodayCalories(s.Meals, today),
		CalorieGoal: s.CalorieGoal,
		Trend:       Trend(DailyRollup(s.Meals), trendWindow),
		BMI:         bmi,
		BMICategory: ClassifyBMI(bmi),
		WaterToday:  s.Water.Glasses(today),
		WaterGoal:   models.DefaultWaterGoal,
	}

	if macros, ok := MacroSplit(s.Meals, today); ok {
		sum.Macros = &macros
	}

	progress, err := CalorieProgress(sum.Calories, s.CalorieGoal)
	switch {
	case errors.Is(err, ErrGoalPending):
		// Goal suggestion still outstanding; leave Progress nil.
	case err != nil:
		return nil, err
	default:
		sum.Progress = &progress
	}

	return sum, nil
}
