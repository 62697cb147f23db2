// ABOUTME: Tests for daily rollup grouping and summation.
// ABOUTME: Covers empty logs, order independence, and optional-field sums.
package engine

import (
	"testing"
	"time"

	"github.com/harperreed/nutri/internal/models"
)

func mealOn(t *testing.T, date string, n models.NutrientInfo) *models.Meal {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		t.Fatalf("bad test date %s: %v", date, err)
	}
	return models.NewMeal("test meal", n).WithLoggedAt(day.Add(12 * time.Hour))
}

func TestDailyRollupEmpty(t *testing.T) {
	rollup := DailyRollup(nil)
	if len(rollup) != 0 {
		t.Errorf("expected empty rollup, got %d entries", len(rollup))
	}
}

func TestDailyRollupGroupsAndSums(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-01", models.NutrientInfo{Calories: 300, Protein: 20, Carbs: models.Carbs{Total: 30}, Fat: models.Fat{Total: 10}}),
		mealOn(t, "2024-01-01", models.NutrientInfo{Calories: 200, Protein: 5, Carbs: models.Carbs{Total: 25}, Fat: models.Fat{Total: 8}}),
		mealOn(t, "2024-01-02", models.NutrientInfo{Calories: 500, Protein: 40, Carbs: models.Carbs{Total: 50}, Fat: models.Fat{Total: 15}}),
	}

	rollup := DailyRollup(meals)
	if len(rollup) != 2 {
		t.Fatalf("expected 2 days, got %d", len(rollup))
	}

	day1 := rollup["2024-01-01"]
	if day1.Calories != 500 || day1.Protein != 25 || day1.Carbs != 55 || day1.Fat != 18 {
		t.Errorf("2024-01-01 totals wrong: %+v", day1)
	}
	day2 := rollup["2024-01-02"]
	if day2.Calories != 500 {
		t.Errorf("2024-01-02 calories = %f, want 500", day2.Calories)
	}
}

func TestDailyRollupOrderIndependent(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-01", models.NutrientInfo{Calories: 300}),
		mealOn(t, "2024-01-02", models.NutrientInfo{Calories: 500}),
		mealOn(t, "2024-01-01", models.NutrientInfo{Calories: 150}),
		mealOn(t, "2024-01-03", models.NutrientInfo{Calories: 400}),
	}
	reversed := make([]*models.Meal, len(meals))
	for i, m := range meals {
		reversed[len(meals)-1-i] = m
	}

	a := DailyRollup(meals)
	b := DailyRollup(reversed)

	if len(a) != len(b) {
		t.Fatalf("rollup sizes differ: %d vs %d", len(a), len(b))
	}
	for key, day := range a {
		if b[key] != day {
			t.Errorf("day %s differs across orderings: %+v vs %+v", key, day, b[key])
		}
	}
}

func TestDailyRollupMissingSubfieldsCountAsZero(t *testing.T) {
	// Fiber, sugar, and saturated fat absent entirely.
	meals := []*models.Meal{
		mealOn(t, "2024-01-01", models.NutrientInfo{
			Calories: 400,
			Protein:  10,
			Carbs:    models.Carbs{Total: 45},
			Fat:      models.Fat{Total: 12},
		}),
	}

	day := DailyRollup(meals)["2024-01-01"]
	if day.Carbs != 45 || day.Fat != 12 {
		t.Errorf("totals corrupted by absent sub-fields: %+v", day)
	}
	// NaN would fail any self-comparison.
	if day.Carbs != day.Carbs || day.Fat != day.Fat {
		t.Error("NaN leaked into rollup totals")
	}
}

func TestTodayCalories(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-01", models.NutrientInfo{Calories: 300}),
		mealOn(t, "2024-01-02", models.NutrientInfo{Calories: 500}),
		mealOn(t, "2024-01-02", models.NutrientInfo{Calories: 250}),
	}

	if got := TodayCalories(meals, "2024-01-02"); got != 750 {
		t.Errorf("TodayCalories = %f, want 750", got)
	}
	if got := TodayCalories(meals, "2024-01-05"); got != 0 {
		t.Errorf("TodayCalories on empty day = %f, want 0", got)
	}
}
