// ABOUTME: Meal and NutrientInfo models for logged eating events.
// ABOUTME: Nutrient values are normalized to zero-filled non-negative numbers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Vitamin is a single vitamin or mineral estimate. Amount is a display
// string with units ("90mg"), opaque to any aggregation.
type Vitamin struct {
	Name   string `json:"name" yaml:"name"`
	Amount string `json:"amount" yaml:"amount"`
}

// Carbs breaks down carbohydrate content in grams.
type Carbs struct {
	Total float64 `json:"total" yaml:"total"`
	Fiber float64 `json:"fiber,omitempty" yaml:"fiber,omitempty"`
	Sugar float64 `json:"sugar,omitempty" yaml:"sugar,omitempty"`
}

// Fat breaks down fat content in grams.
type Fat struct {
	Total     float64 `json:"total" yaml:"total"`
	Saturated float64 `json:"saturated,omitempty" yaml:"saturated,omitempty"`
}

// NutrientInfo is the nutritional estimate for one meal.
type NutrientInfo struct {
	Calories float64   `json:"calories" yaml:"calories"` // kcal
	Protein  float64   `json:"protein" yaml:"protein"`   // g
	Carbs    Carbs     `json:"carbs" yaml:"carbs"`
	Fat      Fat       `json:"fat" yaml:"fat"`
	Sodium   float64   `json:"sodium" yaml:"sodium"` // mg
	Vitamins []Vitamin `json:"vitamins,omitempty" yaml:"vitamins,omitempty"`
	MealName string    `json:"mealName" yaml:"meal_name"`
}

// Normalize clamps every numeric field to zero-or-positive so downstream
// sums never see negative or missing values. Optional sub-fields absent from
// a decoded payload already arrive as 0; negative estimates are floored here
// rather than at each call site.
func (n *NutrientInfo) Normalize() {
	n.Calories = max(n.Calories, 0)
	n.Protein = max(n.Protein, 0)
	n.Carbs.Total = max(n.Carbs.Total, 0)
	n.Carbs.Fiber = max(n.Carbs.Fiber, 0)
	n.Carbs.Sugar = max(n.Carbs.Sugar, 0)
	n.Fat.Total = max(n.Fat.Total, 0)
	n.Fat.Saturated = max(n.Fat.Saturated, 0)
	n.Sodium = max(n.Sodium, 0)
}

// Meal represents one logged eating event. Meals are immutable once created
// and removed only by clearing the whole log on logout.
type Meal struct {
	ID          uuid.UUID    `json:"id" yaml:"id"`
	LoggedAt    time.Time    `json:"logged_at" yaml:"logged_at"`
	Description string       `json:"description" yaml:"description"`
	Nutrients   NutrientInfo `json:"nutrients" yaml:"nutrients"`
}

// NewMeal creates a new Meal with generated UUID and current timestamp.
// Nutrients are normalized on the way in.
func NewMeal(description string, nutrients NutrientInfo) *Meal {
	nutrients.Normalize()
	return &Meal{
		ID:          uuid.New(),
		LoggedAt:    time.Now(),
		Description: description,
		Nutrients:   nutrients,
	}
}

// WithLoggedAt sets a custom logged_at timestamp.
func (m *Meal) WithLoggedAt(t time.Time) *Meal {
	m.LoggedAt = t
	return m
}

// DayKey returns the meal's calendar date in local time, YYYY-MM-DD.
// Local time, not UTC, so a late dinner counts toward the user's "today".
func (m *Meal) DayKey() string {
	return DayKey(m.LoggedAt)
}

// DayKey formats a timestamp as a local-time calendar-date key.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
