// ABOUTME: Gemini-backed Collaborator using langchaingo in JSON mode.
// ABOUTME: Responses are stripped of markup, decoded, and normalized before use.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/harperreed/nutri/internal/models"
)

// DefaultModel is the Gemini model used for all nutrition requests.
const DefaultModel = "gemini-2.5-flash"

// nowFunc is swapped in tests to pin "today".
var nowFunc = time.Now

// Gemini implements Collaborator against the Gemini API.
type Gemini struct {
	llm llms.Model
}

// Compile-time check that Gemini implements Collaborator.
var _ Collaborator = (*Gemini)(nil)

// NewGemini creates a Gemini collaborator. model falls back to DefaultModel
// when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if model == "" {
		model = DefaultModel
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{llm: llm}, nil
}

// AnalyzeMeal estimates the nutritional content of a described meal.
func (g *Gemini) AnalyzeMeal(ctx context.Context, description string) (*models.NutrientInfo, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("meal description is empty")
	}

	var info models.NutrientInfo
	if err := g.jsonCompletion(ctx, analyzePrompt(description), &info); err != nil {
		return nil, fmt.Errorf("analyze meal: %w", err)
	}
	if info.MealName == "" || info.Calories <= 0 {
		return nil, fmt.Errorf("analyze meal: incomplete estimate for %q", description)
	}
	info.Normalize()
	return &info, nil
}

// SuggestCalorieGoal proposes a daily calorie intake for the profile.
func (g *Gemini) SuggestCalorieGoal(ctx context.Context, profile *models.UserProfile) (int, error) {
	if err := profile.Validate(); err != nil {
		return 0, fmt.Errorf("suggest calorie goal: %w", err)
	}

	var result struct {
		SuggestedCalories float64 `json:"suggestedCalories"`
	}
	if err := g.jsonCompletion(ctx, suggestGoalPrompt(profile), &result); err != nil {
		return 0, fmt.Errorf("suggest calorie goal: %w", err)
	}
	kcal := int(math.Round(result.SuggestedCalories))
	if kcal <= 0 {
		return 0, fmt.Errorf("suggest calorie goal: non-positive suggestion %d", kcal)
	}
	return kcal, nil
}

// Advise generates next-meal suggestions from the full session context.
func (g *Gemini) Advise(ctx context.Context, profile *models.UserProfile, meals []*models.Meal, waterToday int) ([]string, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("advise: %w", err)
	}

	today := models.DayKey(nowFunc())
	var result struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := g.jsonCompletion(ctx, advisePrompt(profile, meals, today, waterToday), &result); err != nil {
		return nil, fmt.Errorf("advise: %w", err)
	}
	if len(result.Suggestions) == 0 {
		return nil, fmt.Errorf("advise: empty suggestion list")
	}
	return result.Suggestions, nil
}

// MealFeedback returns one short reminder, or "" when the meal is fine.
func (g *Gemini) MealFeedback(ctx context.Context, nutrients *models.NutrientInfo, profile *models.UserProfile) (string, error) {
	var result struct {
		Feedback string `json:"feedback"`
	}
	if err := g.jsonCompletion(ctx, feedbackPrompt(nutrients, profile), &result); err != nil {
		return "", fmt.Errorf("meal feedback: %w", err)
	}
	return strings.TrimSpace(result.Feedback), nil
}

// jsonCompletion runs one JSON-mode prompt and decodes the response into v.
func (g *Gemini) jsonCompletion(ctx context.Context, prompt string, v any) error {
	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithJSONMode())
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	cleaned := stripMarkup(response)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// stripMarkup removes code-fence markup some models wrap around JSON output.
func stripMarkup(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
