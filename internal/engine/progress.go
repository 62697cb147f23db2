// ABOUTME: Calorie-goal progress as raw and display-clamped percentages.
// ABOUTME: A nil goal yields ErrGoalPending, never a division or a zero.
package engine

import (
	"errors"
	"fmt"
)

// ErrGoalPending indicates the daily calorie goal has not been suggested
// yet. Callers render a placeholder rather than treating it as zero.
var ErrGoalPending = errors.New("calorie goal pending")

// Progress is today's intake measured against the daily calorie goal.
// Raw is the exact percentage and may exceed 100 when the user is over
// goal; Clamped is bounded to [0, 100] for progress-bar display.
type Progress struct {
	Raw     float64 `json:"raw"`
	Clamped float64 `json:"clamped"`
}

// OverGoal reports whether intake has exceeded the goal.
func (p Progress) OverGoal() bool {
	return p.Raw > 100
}

// CalorieProgress computes today's progress ratio against the suggested
// goal. goal is nil while the suggestion is outstanding, which returns
// ErrGoalPending. A non-positive goal is invalid input.
func CalorieProgress(todayCalories float64, goal *int) (Progress, error) {
	if goal == nil {
		return Progress{}, ErrGoalPending
	}
	if *goal <= 0 {
		return Progress{}, fmt.Errorf("calorie goal must be positive, got %d", *goal)
	}
	raw := todayCalories / float64(*goal) * 100
	return Progress{
		Raw:     raw,
		Clamped: min(max(raw, 0), 100),
	}, nil
}
