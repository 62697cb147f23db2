// ABOUTME: Daily rollup of meal nutrients grouped by local calendar date.
// ABOUTME: Pure function over the meal log; recomputed fresh on every call.
package engine

import "github.com/harperreed/nutri/internal/models"

// DayTotals is the summed nutrient intake for one calendar day.
type DayTotals struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyRollup groups meals by local calendar date and sums calories,
// protein, total carbs, and total fat per day. Grouping is
// order-independent; an empty log yields an empty map.
func DailyRollup(meals []*models.Meal) map[string]DayTotals {
	rollup := make(map[string]DayTotals)
	for _, m := range meals {
		key := m.DayKey()
		day := rollup[key]
		day.Date = key
		day.Calories += m.Nutrients.Calories
		day.Protein += m.Nutrients.Protein
		day.Carbs += m.Nutrients.Carbs.Total
		day.Fat += m.Nutrients.Fat.Total
		rollup[key] = day
	}
	return rollup
}

// TodayCalories sums calories over meals logged on the given date key.
func TodayCalories(meals []*models.Meal, today string) float64 {
	var total float64
	for _, m := range meals {
		if m.DayKey() == today {
			total += m.Nutrients.Calories
		}
	}
	return total
}
