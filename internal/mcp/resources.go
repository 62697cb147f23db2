// ABOUTME: MCP resource implementations for nutrition data.
// ABOUTME: Provides nutrition://summary/today, nutrition://meals/recent, and nutrition://water/today.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/engine"
	"github.com/harperreed/nutri/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nutrition://summary/today - Today's dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrition://summary/today",
		Name:        "Today's Nutrition Summary",
		Description: "Calories, macros, goal progress, BMI, and water for today",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// nutrition://meals/recent - Last 10 meals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrition://meals/recent",
		Name:        "Recent Meals",
		Description: "Last 10 logged meals with their nutrients",
		MIMEType:    "application/json",
	}, s.handleRecentMealsResource)

	// nutrition://water/today - Today's water count
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrition://water/today",
		Name:        "Today's Water Intake",
		Description: "Glasses of water logged today against the daily goal",
		MIMEType:    "application/json",
	}, s.handleWaterResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	session, err := s.repo.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	today := models.DayKey(time.Now())

	result := map[string]interface{}{
		"date": today,
	}
	if session.Profile == nil {
		result["message"] = "No profile saved."
	} else {
		summary, err := engine.Summarize(session, today, engine.DefaultTrendWindow)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize: %w", err)
		}
		result["profile"] = session.Profile
		result["calories"] = summary.Calories
		result["bmi"] = summary.BMI
		result["bmi_category"] = summary.BMICategory
		result["water"] = map[string]int{
			"glasses": summary.WaterToday,
			"goal":    summary.WaterGoal,
		}
		if summary.CalorieGoal != nil {
			result["calorie_goal"] = *summary.CalorieGoal
		}
		if summary.Progress != nil {
			result["progress_percent"] = summary.Progress.Raw
		}
		if summary.Macros != nil {
			result["macros"] = summary.Macros
		}
		result["trend"] = summary.Trend
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrition://summary/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleRecentMealsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	meals, err := s.repo.ListMeals(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}

	result := map[string]interface{}{
		"meals": meals,
		"count": len(meals),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrition://meals/recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWaterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.DayKey(time.Now())

	glasses, err := s.repo.GetWater(today)
	if err != nil {
		return nil, fmt.Errorf("failed to read water log: %w", err)
	}

	result := map[string]interface{}{
		"date":    today,
		"glasses": glasses,
		"goal":    models.DefaultWaterGoal,
		"met":     glasses >= models.DefaultWaterGoal,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrition://water/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
