// ABOUTME: Tests for Meal and NutrientInfo models.
// ABOUTME: Validates constructor, normalization, and date keys.
package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewMeal(t *testing.T) {
	m := NewMeal("two eggs and toast", NutrientInfo{
		Calories: 320,
		Protein:  14,
		Carbs:    Carbs{Total: 28, Fiber: 2},
		Fat:      Fat{Total: 16, Saturated: 5},
		Sodium:   400,
		MealName: "Eggs and Toast",
	})

	if m.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if m.Description != "two eggs and toast" {
		t.Errorf("Description = %q", m.Description)
	}
	if m.LoggedAt.IsZero() {
		t.Error("expected LoggedAt to be set")
	}
	if m.Nutrients.Calories != 320 {
		t.Errorf("Calories = %f, want 320", m.Nutrients.Calories)
	}
}

func TestNewMealNormalizesNegatives(t *testing.T) {
	m := NewMeal("weird", NutrientInfo{
		Calories: -50,
		Protein:  10,
		Carbs:    Carbs{Total: -1, Sugar: -3},
		Fat:      Fat{Total: 2, Saturated: -0.5},
		Sodium:   -200,
	})

	n := m.Nutrients
	if n.Calories != 0 || n.Carbs.Total != 0 || n.Carbs.Sugar != 0 ||
		n.Fat.Saturated != 0 || n.Sodium != 0 {
		t.Errorf("expected negative fields clamped to 0, got %+v", n)
	}
	if n.Protein != 10 || n.Fat.Total != 2 {
		t.Errorf("expected positive fields untouched, got %+v", n)
	}
}

func TestNutrientInfoOptionalFieldsDecodeAsZero(t *testing.T) {
	// Payload without fiber, sugar, or saturated fat.
	payload := `{"calories":500,"protein":20,"carbs":{"total":60},"fat":{"total":15},"sodium":300,"mealName":"Pasta"}`

	var n NutrientInfo
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	n.Normalize()

	if n.Carbs.Fiber != 0 || n.Carbs.Sugar != 0 || n.Fat.Saturated != 0 {
		t.Errorf("absent optional fields should be 0, got %+v", n)
	}
	if n.Carbs.Total != 60 {
		t.Errorf("Carbs.Total = %f, want 60", n.Carbs.Total)
	}
}

func TestDayKey(t *testing.T) {
	m := NewMeal("lunch", NutrientInfo{Calories: 400}).
		WithLoggedAt(time.Date(2024, 1, 2, 13, 30, 0, 0, time.Local))

	if got := m.DayKey(); got != "2024-01-02" {
		t.Errorf("DayKey = %s, want 2024-01-02", got)
	}
}

func TestDayKeyDiscardsTimeOfDay(t *testing.T) {
	morning := DayKey(time.Date(2024, 3, 5, 0, 1, 0, 0, time.Local))
	night := DayKey(time.Date(2024, 3, 5, 23, 59, 0, 0, time.Local))
	if morning != night {
		t.Errorf("same local day should share a key: %s vs %s", morning, night)
	}
}
