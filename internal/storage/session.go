// ABOUTME: Session assembly and reset for SQLite storage.
// ABOUTME: Loads the four session values in one call; reset wipes them as a unit.
package storage

import (
	"errors"
	"fmt"

	"github.com/harperreed/nutri/internal/models"
)

// LoadSession loads the full session state at startup. A missing profile is
// not an error here; Session.Profile is nil until login.
func (d *DB) LoadSession() (*models.Session, error) {
	profile, err := d.GetProfile()
	if err != nil && !errors.Is(err, ErrNoProfile) {
		return nil, err
	}

	meals, err := d.ListMeals(0)
	if err != nil {
		return nil, err
	}

	goal, err := d.GetCalorieGoal()
	if err != nil {
		return nil, err
	}

	water, err := d.WaterLog()
	if err != nil {
		return nil, err
	}

	return &models.Session{
		Profile:     profile,
		Meals:       meals,
		CalorieGoal: goal,
		Water:       water,
	}, nil
}

// Reset wipes all session state. Used on login (new user) and logout.
func (d *DB) Reset() error {
	for _, table := range []string{"profile", "meals", "water_log", "settings"} {
		if _, err := d.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
