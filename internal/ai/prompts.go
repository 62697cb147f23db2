// ABOUTME: Prompt builders for the Gemini nutrition collaborator.
// ABOUTME: Each prompt pins the exact JSON shape the parser expects.
package ai

import (
	"fmt"
	"strings"

	"github.com/harperreed/nutri/internal/models"
)

func concernList(profile *models.UserProfile) string {
	if len(profile.HealthConcerns) == 0 {
		return "None specified"
	}
	parts := make([]string, len(profile.HealthConcerns))
	for i, c := range profile.HealthConcerns {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "None specified"
	}
	return s
}

func analyzePrompt(description string) string {
	return fmt.Sprintf(`Analyze the following meal and provide its nutritional information.
Be as accurate as possible based on the description. Meal: %q

Respond with a single JSON object in exactly this shape:
{
  "calories": number,           // total estimated kcal
  "protein": number,            // grams of protein
  "carbs": {"total": number, "fiber": number, "sugar": number},
  "fat": {"total": number, "saturated": number},
  "sodium": number,             // milligrams of sodium
  "vitamins": [{"name": string, "amount": string}],  // 2-4 key vitamins/minerals, amount with units e.g. "90mg"
  "mealName": string            // short descriptive name, e.g. "Oatmeal with Berries and Nuts"
}`, description)
}

func suggestGoalPrompt(profile *models.UserProfile) string {
	return fmt.Sprintf(`Based on the following user profile, suggest a daily calorie intake goal.
- Name: %s
- Goal: %s
- Height: %.0f cm
- Weight: %.0f kg
- Health Concerns: %s
- Other Details/Preferences: %s

Consider factors like goal (weight loss, gain, maintenance), and general health guidelines.
Respond with a single JSON object: {"suggestedCalories": number}`,
		profile.Name, profile.Goal, profile.Height, profile.Weight,
		concernList(profile), orNone(profile.Details))
}

func advisePrompt(profile *models.UserProfile, meals []*models.Meal, today string, waterToday int) string {
	var totals struct {
		calories, protein, carbs, fat, sodium float64
	}
	for _, m := range meals {
		if m.DayKey() != today {
			continue
		}
		totals.calories += m.Nutrients.Calories
		totals.protein += m.Nutrients.Protein
		totals.carbs += m.Nutrients.Carbs.Total
		totals.fat += m.Nutrients.Fat.Total
		totals.sodium += m.Nutrients.Sodium
	}

	return fmt.Sprintf(`You are an expert nutritionist AI. Your task is to provide personalized meal suggestions.
User Profile:
- Name: %s
- Goal: %s
- Specific Health Concerns: %s
- Other Details: %s

Today's total intake so far:
- Calories: %.0f kcal
- Protein: %.1fg
- Carbohydrates: %.1fg
- Fat: %.1fg
- Sodium: %.0fmg
- Water Intake: %d glasses (daily goal is %d).

Based on all of this information, provide 2-3 specific and actionable suggestions for what their *next* meal could include. When recommending foods, suggest appropriate portion sizes (e.g., 'a 150g serving of salmon', '1 cup of broccoli', 'a handful of almonds'). Tailor your advice directly to their specific health concerns.
- If concerns include 'diabetes' or 'pre-diabetes', focus on low-glycemic index foods, fiber, and balanced macronutrients.
- If concerns include 'hypertension', suggest low-sodium options and foods high in potassium.
- If concerns include 'high-cholesterol', recommend foods low in saturated and trans fats, and high in soluble fiber (like oats, apples, beans).
- If concerns include 'anemia', suggest foods rich in iron (like lean red meat, lentils, spinach) and vitamin C to aid absorption.
- If concerns include 'vitamin-d-deficiency', suggest fortified foods (milk, cereal) or fatty fish.
- If concerns include 'vitamin-b12-deficiency', recommend animal products or fortified nutritional yeast.
- If concerns include 'pcos', recommend meals that help manage insulin resistance, like those with lean protein, healthy fats, and complex carbs.
- If their water intake is low, include a friendly reminder to hydrate.

Be encouraging. Address the user by their name, %s, but do not include a greeting at the start of each suggestion. The suggestions should be full sentences.
Respond with a single JSON object: {"suggestions": [string]}`,
		profile.Name, profile.Goal, concernList(profile), orNone(profile.Details),
		totals.calories, totals.protein, totals.carbs, totals.fat, totals.sodium,
		waterToday, models.DefaultWaterGoal, profile.Name)
}

func feedbackPrompt(nutrients *models.NutrientInfo, profile *models.UserProfile) string {
	return fmt.Sprintf(`You are a nutritional assistant. Analyze the following meal in the context of the user's health profile.
User Profile:
- Goal: %s
- Health Concerns: %s
- Other Details: %s

Meal Nutrients:
- Calories: %.0f
- Sugar: %.1fg
- Saturated Fat: %.1fg
- Sodium: %.0fmg

Based on the user's profile, if this meal is significantly high in a nutrient that could negatively impact their health goals (e.g., high sugar for 'diabetes'/'pre-diabetes', high sodium for 'hypertension', high saturated fat for 'high-cholesterol'), provide one single, short, constructive, and friendly reminder. The reminder should be a single sentence.
If the meal is fine for the user, your feedback should be an empty string. Only provide feedback for significant deviations, not minor ones.
Respond with a single JSON object: {"feedback": string}`,
		profile.Goal, concernList(profile), orNone(profile.Details),
		nutrients.Calories, nutrients.Carbs.Sugar, nutrients.Fat.Saturated, nutrients.Sodium)
}
