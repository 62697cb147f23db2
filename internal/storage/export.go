// ABOUTME: Export and import functionality for nutrition data.
// ABOUTME: Supports JSON and YAML full-session dumps.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/nutri/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for nutrition data.
type ExportData struct {
	Version     string              `json:"version" yaml:"version"`
	ExportedAt  time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool        string              `json:"tool" yaml:"tool"`
	Profile     *models.UserProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	CalorieGoal *int                `json:"calorie_goal,omitempty" yaml:"calorie_goal,omitempty"`
	Meals       []*models.Meal      `json:"meals" yaml:"meals"`
	Water       models.WaterLog     `json:"water" yaml:"water"`
}

// NewExportData wraps a session in the versioned export envelope.
func NewExportData(session *models.Session) *ExportData {
	return &ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "nutri",
		Profile:     session.Profile,
		CalorieGoal: session.CalorieGoal,
		Meals:       session.Meals,
		Water:       session.Water,
	}
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	session, err := d.LoadSession()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return NewExportData(session), nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	return ImportInto(d, data)
}

// ImportInto writes export data into any Repository implementation.
func ImportInto(repo Repository, data *ExportData) error {
	if data.Profile != nil {
		if err := repo.SaveProfile(data.Profile); err != nil {
			return fmt.Errorf("import profile: %w", err)
		}
	}
	if data.CalorieGoal != nil {
		if err := repo.SetCalorieGoal(*data.CalorieGoal); err != nil {
			return fmt.Errorf("import calorie goal: %w", err)
		}
	}
	for _, m := range data.Meals {
		if err := repo.CreateMeal(m); err != nil {
			return fmt.Errorf("import meal %s: %w", m.ID, err)
		}
	}
	for date, glasses := range data.Water {
		if err := repo.SetWater(date, glasses); err != nil {
			return fmt.Errorf("import water %s: %w", date, err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON imports a JSON export into the repository.
func ImportJSON(repo Repository, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse export: %w", err)
	}
	if data.Version == "" {
		return errors.New("export file has no version")
	}
	return repo.ImportData(&data)
}
