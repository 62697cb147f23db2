// ABOUTME: Tests for calorie-goal progress.
// ABOUTME: Validates the pending sentinel, exact raw ratio, and clamping.
package engine

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestCalorieProgressGoalPending(t *testing.T) {
	_, err := CalorieProgress(1500, nil)
	if !errors.Is(err, ErrGoalPending) {
		t.Errorf("expected ErrGoalPending, got %v", err)
	}
}

func TestCalorieProgressRawAndClamped(t *testing.T) {
	tests := []struct {
		name        string
		calories    float64
		goal        int
		wantRaw     float64
		wantClamped float64
		overGoal    bool
	}{
		{"under goal", 1500, 2000, 75, 75, false},
		{"at goal", 2000, 2000, 100, 100, false},
		{"over goal", 2500, 2000, 125, 100, true},
		{"nothing logged", 0, 2000, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CalorieProgress(tt.calories, intPtr(tt.goal))
			if err != nil {
				t.Fatalf("CalorieProgress failed: %v", err)
			}
			if p.Raw != tt.wantRaw {
				t.Errorf("Raw = %f, want %f", p.Raw, tt.wantRaw)
			}
			if p.Clamped != tt.wantClamped {
				t.Errorf("Clamped = %f, want %f", p.Clamped, tt.wantClamped)
			}
			if p.OverGoal() != tt.overGoal {
				t.Errorf("OverGoal = %v, want %v", p.OverGoal(), tt.overGoal)
			}
		})
	}
}

func TestCalorieProgressInvalidGoal(t *testing.T) {
	if _, err := CalorieProgress(1000, intPtr(0)); err == nil {
		t.Error("expected error for zero goal")
	}
	if _, err := CalorieProgress(1000, intPtr(-200)); err == nil {
		t.Error("expected error for negative goal")
	}
}

func TestClampedAlwaysInRange(t *testing.T) {
	for _, calories := range []float64{0, 1, 1999, 2000, 2001, 9999} {
		p, err := CalorieProgress(calories, intPtr(2000))
		if err != nil {
			t.Fatalf("CalorieProgress failed: %v", err)
		}
		if p.Clamped < 0 || p.Clamped > 100 {
			t.Errorf("Clamped out of range for %f kcal: %f", calories, p.Clamped)
		}
	}
}
