// ABOUTME: Tests for export, import, and backend migration.
// ABOUTME: Round-trips session data through JSON and between databases.
package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/nutri/internal/models"
)

func seedDB(t *testing.T, db *DB) {
	t.Helper()
	p := &models.UserProfile{Name: "Sam", Goal: models.GoalWeightLoss, Height: 175, Weight: 70}
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := db.CreateMeal(testMeal(420)); err != nil {
		t.Fatalf("CreateMeal failed: %v", err)
	}
	if err := db.SetCalorieGoal(1900); err != nil {
		t.Fatalf("SetCalorieGoal failed: %v", err)
	}
	if err := db.SetWater("2024-01-01", 6); err != nil {
		t.Fatalf("SetWater failed: %v", err)
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	seedDB(t, src)

	raw, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst, err := Open(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = dst.Close() }()

	if err := ImportJSON(dst, raw); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	session, err := dst.LoadSession()
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if session.Profile == nil || session.Profile.Name != "Sam" {
		t.Error("profile missing after import")
	}
	if len(session.Meals) != 1 || session.Meals[0].Nutrients.Calories != 420 {
		t.Errorf("meals wrong after import: %v", session.Meals)
	}
	if session.CalorieGoal == nil || *session.CalorieGoal != 1900 {
		t.Error("goal missing after import")
	}
	if session.Water.Glasses("2024-01-01") != 6 {
		t.Error("water missing after import")
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	seedDB(t, db)

	raw, err := ExportYAML(db)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	out := string(raw)
	for _, want := range []string{"tool: nutri", "calorie_goal: 1900", "Test Meal"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML export missing %q:\n%s", want, out)
		}
	}
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)
	if err := ImportJSON(db, []byte("not json")); err == nil {
		t.Error("expected parse error")
	}
	if err := ImportJSON(db, []byte("{}")); err == nil {
		t.Error("expected version error")
	}
}

func TestMigrateData(t *testing.T) {
	src := setupTestDB(t)
	seedDB(t, src)

	dst, err := Open(filepath.Join(t.TempDir(), "dst.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = dst.Close() }()

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if !summary.Profile || summary.Meals != 1 || summary.WaterDays != 1 || !summary.Goal {
		t.Errorf("summary = %+v", summary)
	}

	got, err := dst.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if got.Name != "Sam" {
		t.Errorf("profile not migrated: %+v", got)
	}
}
