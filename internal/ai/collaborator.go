// ABOUTME: Collaborator interface for AI-backed nutrition estimation.
// ABOUTME: All nutritional reasoning happens behind this boundary.
package ai

import (
	"context"

	"github.com/harperreed/nutri/internal/models"
)

// Collaborator estimates nutrition and generates advice from free text.
// Implementations call an external generative-AI service; every method
// validates the response before it can enter the meal log, so downstream
// consumers never observe a partial or malformed estimate.
type Collaborator interface {
	// AnalyzeMeal estimates the nutritional content of a described meal.
	AnalyzeMeal(ctx context.Context, description string) (*models.NutrientInfo, error)

	// SuggestCalorieGoal proposes a daily calorie intake for the profile.
	SuggestCalorieGoal(ctx context.Context, profile *models.UserProfile) (int, error)

	// Advise generates 2-3 next-meal suggestions from the profile, the meal
	// log, and today's water intake.
	Advise(ctx context.Context, profile *models.UserProfile, meals []*models.Meal, waterToday int) ([]string, error)

	// MealFeedback returns one short reminder when a meal conflicts with the
	// user's health profile, or "" when the meal is fine. Callers treat
	// failures as non-critical and suppress them.
	MealFeedback(ctx context.Context, nutrients *models.NutrientInfo, profile *models.UserProfile) (string, error)
}
