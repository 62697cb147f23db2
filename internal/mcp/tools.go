// ABOUTME: MCP tool implementations for the nutrition log.
// ABOUTME: The calling assistant supplies nutrient estimates for log_meal.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/engine"
	"github.com/harperreed/nutri/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Record a meal with its estimated nutritional content",
	}, s.handleLogMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List recent meals with their nutrients",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a meal by ID or ID prefix",
	}, s.handleDeleteMeal)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Add or remove glasses of water for today",
	}, s.handleLogWater)

	// get_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_summary",
		Description: "Today's calories, macros, goal progress, BMI, and water",
	}, s.handleGetSummary)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Daily nutrient totals for the last N days with data",
	}, s.handleGetTrend)
}

// Tool input/output types

type logMealInput struct {
	Description string  `json:"description" jsonschema:"What the user ate in their own words"`
	Calories    float64 `json:"calories" jsonschema:"Estimated kcal"`
	Protein     float64 `json:"protein,omitempty" jsonschema:"Grams of protein"`
	Carbs       float64 `json:"carbs,omitempty" jsonschema:"Grams of total carbohydrates"`
	Fiber       float64 `json:"fiber,omitempty" jsonschema:"Grams of dietary fiber"`
	Sugar       float64 `json:"sugar,omitempty" jsonschema:"Grams of sugar"`
	Fat         float64 `json:"fat,omitempty" jsonschema:"Grams of total fat"`
	Saturated   float64 `json:"saturated,omitempty" jsonschema:"Grams of saturated fat"`
	Sodium      float64 `json:"sodium,omitempty" jsonschema:"Milligrams of sodium"`
	MealName    string  `json:"meal_name,omitempty" jsonschema:"Short display name for the meal"`
	LoggedAt    string  `json:"logged_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type mealOutput struct {
	ID       string  `json:"id"`
	MealName string  `json:"meal_name"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

type listMealsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteMealInput struct {
	ID string `json:"id" jsonschema:"Meal ID or prefix"`
}

type logWaterInput struct {
	Glasses int `json:"glasses" jsonschema:"Glasses to add (negative removes); today's count never goes below 0"`
}

type waterOutput struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
	Goal    int    `json:"goal"`
	Message string `json:"message"`
}

type getSummaryInput struct{}

type getTrendInput struct {
	Days int `json:"days,omitempty" jsonschema:"Window size in days (default 7)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, mealOutput, error) {
	if input.Description == "" {
		return nil, mealOutput{}, fmt.Errorf("description is required")
	}
	if input.Calories <= 0 {
		return nil, mealOutput{}, fmt.Errorf("calories must be positive")
	}

	mealName := input.MealName
	if mealName == "" {
		mealName = input.Description
	}

	m := models.NewMeal(input.Description, models.NutrientInfo{
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    models.Carbs{Total: input.Carbs, Fiber: input.Fiber, Sugar: input.Sugar},
		Fat:      models.Fat{Total: input.Fat, Saturated: input.Saturated},
		Sodium:   input.Sodium,
		MealName: mealName,
	})

	if input.LoggedAt != "" {
		t, err := time.Parse(time.RFC3339, input.LoggedAt)
		if err != nil {
			// Zone-less timestamps are local wall-clock time, matching
			// how daily totals are grouped.
			t, err = time.ParseInLocation("2006-01-02 15:04", input.LoggedAt, time.Local)
		}
		if err != nil {
			return nil, mealOutput{}, fmt.Errorf("invalid logged_at %q: use RFC3339 or YYYY-MM-DD HH:MM", input.LoggedAt)
		}
		m.WithLoggedAt(t)
	}

	if err := s.repo.CreateMeal(m); err != nil {
		return nil, mealOutput{}, fmt.Errorf("failed to create meal: %w", err)
	}

	return nil, mealOutput{
		ID:       m.ID.String()[:8],
		MealName: mealName,
		Calories: m.Nutrients.Calories,
		Message:  fmt.Sprintf("Logged %s: %.0f kcal (ID: %s)", mealName, m.Nutrients.Calories, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input listMealsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	meals, err := s.repo.ListMeals(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 {
		return nil, map[string]interface{}{"message": "No meals found."}, nil
	}

	return nil, meals, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMeal(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted meal: %s", input.ID),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, waterOutput, error) {
	today := models.DayKey(time.Now())

	current, err := s.repo.GetWater(today)
	if err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to read water log: %w", err)
	}

	// Floor at zero; a remove on an empty day is a no-op.
	updated := max(current+input.Glasses, 0)
	if err := s.repo.SetWater(today, updated); err != nil {
		return nil, waterOutput{}, fmt.Errorf("failed to update water log: %w", err)
	}

	return nil, waterOutput{
		Date:    today,
		Glasses: updated,
		Goal:    models.DefaultWaterGoal,
		Message: fmt.Sprintf("Water for %s: %d/%d glasses", today, updated, models.DefaultWaterGoal),
	}, nil
}

func (s *Server) handleGetSummary(ctx context.Context, req *mcp.CallToolRequest, input getSummaryInput) (*mcp.CallToolResult, any, error) {
	session, err := s.repo.LoadSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Profile == nil {
		return nil, map[string]interface{}{"message": "No profile set up yet. Run 'nutri login' first."}, nil
	}

	summary, err := engine.Summarize(session, models.DayKey(time.Now()), engine.DefaultTrendWindow)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize: %w", err)
	}

	result := map[string]interface{}{
		"date":         summary.Date,
		"calories":     summary.Calories,
		"bmi":          summary.BMI,
		"bmi_category": summary.BMICategory,
		"water":        fmt.Sprintf("%d/%d glasses", summary.WaterToday, summary.WaterGoal),
	}
	if summary.CalorieGoal != nil {
		result["calorie_goal"] = *summary.CalorieGoal
	} else {
		result["calorie_goal"] = "pending"
	}
	if summary.Progress != nil {
		result["progress_percent"] = summary.Progress.Raw
		result["over_goal"] = summary.Progress.OverGoal()
	}
	if summary.Macros != nil {
		result["macros"] = summary.Macros
	} else {
		result["macros"] = "no data for today"
	}

	return nil, result, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, any, error) {
	meals, err := s.repo.ListMeals(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list meals: %w", err)
	}

	trend := engine.Trend(engine.DailyRollup(meals), input.Days)
	if len(trend) == 0 {
		return nil, map[string]interface{}{"message": "No meals logged yet."}, nil
	}

	return nil, trend, nil
}
