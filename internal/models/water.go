// ABOUTME: WaterLog model mapping calendar dates to glass counts.
// ABOUTME: Sparse map; absent date means zero glasses.
package models

// DefaultWaterGoal is the display goal in glasses per day. The log itself
// enforces no ceiling.
const DefaultWaterGoal = 8

// WaterLog maps a local calendar-date key (YYYY-MM-DD) to a glass count.
type WaterLog map[string]int

// Glasses returns the count for a date, 0 when absent.
func (w WaterLog) Glasses(date string) int {
	return w[date]
}

// Add increments the count for a date.
func (w WaterLog) Add(date string) {
	w[date]++
}

// Remove decrements the count for a date, clamped at a floor of 0.
func (w WaterLog) Remove(date string) {
	if w[date] <= 1 {
		delete(w, date)
		return
	}
	w[date]--
}
