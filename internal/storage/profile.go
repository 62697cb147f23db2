// ABOUTME: Profile and calorie-goal persistence for SQLite storage.
// ABOUTME: Single-row profile; goal lives in the settings table, absent until suggested.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/harperreed/nutri/internal/models"
)

const calorieGoalKey = "calorie_goal"

// SaveProfile stores or replaces the user profile. The profile is validated
// before it is written.
func (d *DB) SaveProfile(p *models.UserProfile) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	concerns, err := json.Marshal(p.HealthConcerns)
	if err != nil {
		return fmt.Errorf("marshal health concerns: %w", err)
	}

	query := `
		INSERT INTO profile (id, name, goal, health_concerns, details, height_cm, weight_kg)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			goal = excluded.goal,
			health_concerns = excluded.health_concerns,
			details = excluded.details,
			height_cm = excluded.height_cm,
			weight_kg = excluded.weight_kg,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err = d.db.Exec(query, p.Name, string(p.Goal), string(concerns), p.Details, p.Height, p.Weight)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the stored profile, or ErrNoProfile if none exists.
func (d *DB) GetProfile() (*models.UserProfile, error) {
	query := `
		SELECT name, goal, health_concerns, details, height_cm, weight_kg
		FROM profile WHERE id = 1
	`
	var (
		p        models.UserProfile
		goal     string
		concerns string
	)
	err := d.db.QueryRow(query).Scan(&p.Name, &goal, &concerns, &p.Details, &p.Height, &p.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Goal = models.Goal(goal)
	if err := json.Unmarshal([]byte(concerns), &p.HealthConcerns); err != nil {
		return nil, fmt.Errorf("unmarshal health concerns: %w", err)
	}
	return &p, nil
}

// SetCalorieGoal stores the suggested daily calorie goal.
func (d *DB) SetCalorieGoal(kcal int) error {
	if kcal <= 0 {
		return fmt.Errorf("calorie goal must be positive, got %d", kcal)
	}
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := d.db.Exec(query, calorieGoalKey, strconv.Itoa(kcal)); err != nil {
		return fmt.Errorf("set calorie goal: %w", err)
	}
	return nil
}

// GetCalorieGoal retrieves the stored goal. A nil result with nil error
// means no suggestion has been stored yet (goal pending).
func (d *DB) GetCalorieGoal() (*int, error) {
	var value string
	err := d.db.QueryRow("SELECT value FROM settings WHERE key = ?", calorieGoalKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get calorie goal: %w", err)
	}

	kcal, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("parse calorie goal: %w", err)
	}
	return &kcal, nil
}
