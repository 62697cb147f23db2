// ABOUTME: Session is the explicit application-state object for one user.
// ABOUTME: Loaded from storage at startup and passed to the engine by value.
package models

// Session carries everything the aggregation engine may need. The engine
// never reads ambient or global state; every derived value is recomputed
// from a Session on each call.
type Session struct {
	Profile     *UserProfile
	Meals       []*Meal
	CalorieGoal *int // nil until a suggestion has been stored
	Water       WaterLog
}
