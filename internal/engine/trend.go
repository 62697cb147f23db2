// ABOUTME: Trailing window of daily rollups for trend charting.
// ABOUTME: Only days with logged meals appear; gaps are not zero-filled.
package engine

import "sort"

// DefaultTrendWindow is the number of trailing days shown by default.
const DefaultTrendWindow = 7

// Trend returns the most recent n days of the rollup, sorted strictly
// ascending by date key. If fewer than n days exist, all of them are
// returned. n <= 0 falls back to DefaultTrendWindow.
func Trend(rollup map[string]DayTotals, n int) []DayTotals {
	if n <= 0 {
		n = DefaultTrendWindow
	}

	days := make([]DayTotals, 0, len(rollup))
	for _, day := range rollup {
		days = append(days, day)
	}
	// Date keys are YYYY-MM-DD, so lexicographic order is chronological.
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	if len(days) > n {
		days = days[len(days)-n:]
	}
	return days
}
