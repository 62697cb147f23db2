// ABOUTME: Water log persistence for SQLite storage.
// ABOUTME: One row per date; zero-glass days are deleted to keep the log sparse.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/nutri/internal/models"
)

// SetWater stores the glass count for a date. Counts at or below zero remove
// the row, keeping absent-means-zero true in the table as well.
func (d *DB) SetWater(date string, glasses int) error {
	if glasses <= 0 {
		if _, err := d.db.Exec("DELETE FROM water_log WHERE date = ?", date); err != nil {
			return fmt.Errorf("clear water: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO water_log (date, glasses) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET glasses = excluded.glasses
	`
	if _, err := d.db.Exec(query, date, glasses); err != nil {
		return fmt.Errorf("set water: %w", err)
	}
	return nil
}

// GetWater returns the glass count for a date, 0 when absent.
func (d *DB) GetWater(date string) (int, error) {
	var glasses int
	err := d.db.QueryRow("SELECT glasses FROM water_log WHERE date = ?", date).Scan(&glasses)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get water: %w", err)
	}
	return glasses, nil
}

// WaterLog returns the full sparse water log.
func (d *DB) WaterLog() (models.WaterLog, error) {
	rows, err := d.db.Query("SELECT date, glasses FROM water_log")
	if err != nil {
		return nil, fmt.Errorf("load water log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	log := models.WaterLog{}
	for rows.Next() {
		var (
			date    string
			glasses int
		)
		if err := rows.Scan(&date, &glasses); err != nil {
			return nil, err
		}
		log[date] = glasses
	}
	return log, rows.Err()
}
