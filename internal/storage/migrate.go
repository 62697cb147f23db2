// ABOUTME: Data migration between nutrition storage backends.
// ABOUTME: Copies profile, meals, calorie goal, and water from source to destination.
package storage

import "fmt"

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Profile   bool
	Meals     int
	WaterDays int
	Goal      bool
}

// MigrateData copies all session data from src to dst storage. The
// destination should be empty before calling this function.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	data, err := src.GetAllData()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	if err := dst.ImportData(data); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}

	return &MigrateSummary{
		Profile:   data.Profile != nil,
		Meals:     len(data.Meals),
		WaterDays: len(data.Water),
		Goal:      data.CalorieGoal != nil,
	}, nil
}
