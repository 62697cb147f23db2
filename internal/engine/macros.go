// ABOUTME: Today's macronutrient split for ratio charts.
// ABOUTME: Signals "no data" instead of a degenerate 0/0/0 split.
package engine

import "github.com/harperreed/nutri/internal/models"

// MacroTotals holds summed macronutrient grams for one day.
type MacroTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroSplit sums protein, total carbs, and total fat across meals logged on
// the given date key. The second return is false when all three totals are
// exactly zero; callers must not render a ratio chart in that case since
// 0/0/0 has no meaningful proportions.
func MacroSplit(meals []*models.Meal, today string) (MacroTotals, bool) {
	var totals MacroTotals
	for _, m := range meals {
		if m.DayKey() != today {
			continue
		}
		totals.Protein += m.Nutrients.Protein
		totals.Carbs += m.Nutrients.Carbs.Total
		totals.Fat += m.Nutrients.Fat.Total
	}
	if totals.Protein == 0 && totals.Carbs == 0 && totals.Fat == 0 {
		return MacroTotals{}, false
	}
	return totals, true
}
