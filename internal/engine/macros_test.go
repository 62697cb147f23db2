// ABOUTME: Tests for today's macro split.
// ABOUTME: Validates the no-data signal for all-zero days.
package engine

import (
	"testing"

	"github.com/harperreed/nutri/internal/models"
)

func TestMacroSplit(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-02", models.NutrientInfo{Protein: 20, Carbs: models.Carbs{Total: 40}, Fat: models.Fat{Total: 10}}),
		mealOn(t, "2024-01-02", models.NutrientInfo{Protein: 10, Carbs: models.Carbs{Total: 20}, Fat: models.Fat{Total: 5}}),
		mealOn(t, "2024-01-01", models.NutrientInfo{Protein: 99, Carbs: models.Carbs{Total: 99}, Fat: models.Fat{Total: 99}}),
	}

	totals, ok := MacroSplit(meals, "2024-01-02")
	if !ok {
		t.Fatal("expected data for 2024-01-02")
	}
	if totals.Protein != 30 || totals.Carbs != 60 || totals.Fat != 15 {
		t.Errorf("totals = %+v", totals)
	}
}

func TestMacroSplitNoMealsToday(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-01", models.NutrientInfo{Protein: 20, Carbs: models.Carbs{Total: 40}, Fat: models.Fat{Total: 10}}),
	}

	if _, ok := MacroSplit(meals, "2024-01-02"); ok {
		t.Error("expected no-data signal when no meals are logged today")
	}
}

func TestMacroSplitAllZeroIsNoData(t *testing.T) {
	// A meal exists today but carries no macros (e.g. black coffee).
	meals := []*models.Meal{
		mealOn(t, "2024-01-02", models.NutrientInfo{Calories: 5}),
	}

	if _, ok := MacroSplit(meals, "2024-01-02"); ok {
		t.Error("expected no-data signal for 0/0/0 macros")
	}
}

func TestMacroSplitSingleNonZeroMacro(t *testing.T) {
	meals := []*models.Meal{
		mealOn(t, "2024-01-02", models.NutrientInfo{Protein: 25}),
	}

	totals, ok := MacroSplit(meals, "2024-01-02")
	if !ok {
		t.Fatal("one non-zero macro is still data")
	}
	if totals.Protein != 25 || totals.Carbs != 0 || totals.Fat != 0 {
		t.Errorf("totals = %+v", totals)
	}
}
