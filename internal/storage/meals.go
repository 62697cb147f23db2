// ABOUTME: Meal CRUD operations for SQLite storage.
// ABOUTME: Nutrients are stored as a JSON column; meals are append-only.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/nutri/internal/models"
)

// CreateMeal stores a new meal in the database.
func (d *DB) CreateMeal(m *models.Meal) error {
	nutrients, err := json.Marshal(m.Nutrients)
	if err != nil {
		return fmt.Errorf("marshal nutrients: %w", err)
	}

	query := `
		INSERT INTO meals (id, logged_at, description, nutrients)
		VALUES (?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		m.ID.String(),
		m.LoggedAt.Format(time.RFC3339),
		m.Description,
		string(nutrients),
	)
	if err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	return nil
}

// GetMeal retrieves a meal by ID or ID prefix.
func (d *DB) GetMeal(idOrPrefix string) (*models.Meal, error) {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, logged_at, description, nutrients
		FROM meals
		WHERE id = ?
	`
	return d.scanMeal(d.db.QueryRow(query, id))
}

// ListMeals retrieves meals sorted by LoggedAt descending (most recent
// first). A limit of 0 returns the full log.
func (d *DB) ListMeals(limit int) ([]*models.Meal, error) {
	query := `
		SELECT id, logged_at, description, nutrients
		FROM meals
		ORDER BY logged_at DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meals []*models.Meal
	for rows.Next() {
		m, err := d.scanMealRow(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, rows.Err()
}

// DeleteMeal removes a meal by ID or ID prefix.
func (d *DB) DeleteMeal(idOrPrefix string) error {
	id, err := d.resolveMealID(idOrPrefix)
	if err != nil {
		return err
	}

	result, err := d.db.Exec("DELETE FROM meals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("meal not found: %s", idOrPrefix)
	}
	return nil
}

// resolveMealID resolves an ID prefix to a full meal ID.
func (d *DB) resolveMealID(idOrPrefix string) (string, error) {
	// Full UUID: use as-is
	if _, err := uuid.Parse(idOrPrefix); err == nil {
		return idOrPrefix, nil
	}

	rows, err := d.db.Query("SELECT id FROM meals WHERE id LIKE ?", idOrPrefix+"%")
	if err != nil {
		return "", fmt.Errorf("resolve meal id: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("meal not found: %s", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous prefix %s: matches %d meals", idOrPrefix, len(matches))
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (d *DB) scanMeal(row *sql.Row) (*models.Meal, error) {
	m, err := d.scanMealRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meal not found")
	}
	return m, err
}

func (d *DB) scanMealRow(row rowScanner) (*models.Meal, error) {
	var (
		idStr     string
		loggedAt  string
		nutrients string
		m         models.Meal
	)
	if err := row.Scan(&idStr, &loggedAt, &m.Description, &nutrients); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse meal id: %w", err)
	}
	m.ID = id

	// Stored as RFC3339; tolerate the space-separated form SQLite may emit.
	t, err := time.Parse(time.RFC3339, loggedAt)
	if err != nil {
		t, err = time.Parse("2006-01-02 15:04:05", strings.TrimSuffix(loggedAt, "Z"))
		if err != nil {
			return nil, fmt.Errorf("parse logged_at: %w", err)
		}
	}
	m.LoggedAt = t

	if err := json.Unmarshal([]byte(nutrients), &m.Nutrients); err != nil {
		return nil, fmt.Errorf("unmarshal nutrients: %w", err)
	}
	m.Nutrients.Normalize()

	return &m, nil
}
