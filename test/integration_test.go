// ABOUTME: Integration tests for nutri CLI.
// ABOUTME: Tests full workflow from CLI commands.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	nutriBinary := filepath.Join(projectRoot, "nutri")

	buildCmd := exec.Command("go", "build", "-o", nutriBinary, "./cmd/nutri")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	defer os.Remove(nutriBinary)

	// Isolate data, config, and the Gemini key so everything stays offline
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_DATA_HOME="+tmpDir,
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"GEMINI_API_KEY=",
		"API_KEY=",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(nutriBinary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Profile setup; without an API key the calorie goal stays pending
	output, err := run("login", "--name", "Alex", "--goal", "maintenance",
		"--height", "175", "--weight", "70")
	if err != nil {
		t.Fatalf("Failed to log in: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Profile saved for Alex") {
		t.Errorf("Expected 'Profile saved for Alex' in output, got: %s", output)
	}
	if !strings.Contains(output, "Calorie goal pending") {
		t.Errorf("Expected pending calorie goal in output, got: %s", output)
	}

	// Profile readback
	output, err = run("profile")
	if err != nil {
		t.Fatalf("Failed to show profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Maintenance") {
		t.Errorf("Expected goal label in profile output, got: %s", output)
	}
	if !strings.Contains(output, "pending") {
		t.Errorf("Expected pending target in profile output, got: %s", output)
	}

	// Water tracking
	output, err = run("water", "add", "3")
	if err != nil {
		t.Fatalf("Failed to add water: %v\n%s", err, output)
	}
	if !strings.Contains(output, "3/8 glasses") {
		t.Errorf("Expected '3/8 glasses' in output, got: %s", output)
	}

	output, err = run("water", "remove", "5")
	if err != nil {
		t.Fatalf("Failed to remove water: %v\n%s", err, output)
	}
	if !strings.Contains(output, "0/8 glasses") {
		t.Errorf("Expected floor at zero, got: %s", output)
	}

	// Empty meal log
	output, err = run("list")
	if err != nil {
		t.Fatalf("Failed to list: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No meals logged yet") {
		t.Errorf("Expected empty-log message, got: %s", output)
	}

	// Summary works with a pending goal and no meals
	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to show summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "goal pending") {
		t.Errorf("Expected pending-goal placeholder, got: %s", output)
	}
	if !strings.Contains(output, "BMI") {
		t.Errorf("Expected BMI line, got: %s", output)
	}
	if !strings.Contains(output, "Normal weight") {
		t.Errorf("Expected BMI category for 70kg/175cm, got: %s", output)
	}

	// Manual goal, then the summary reports progress
	output, err = run("goal", "set", "2000")
	if err != nil {
		t.Fatalf("Failed to set goal: %v\n%s", err, output)
	}

	output, err = run("summary")
	if err != nil {
		t.Fatalf("Failed to show summary: %v\n%s", err, output)
	}
	if !strings.Contains(output, "/ 2000 kcal") {
		t.Errorf("Expected goal in summary, got: %s", output)
	}

	// Export and re-import
	backupPath := filepath.Join(tmpDir, "backup.json")
	output, err = run("export", "json", "-o", backupPath)
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}

	output, err = run("logout", "--force")
	if err != nil {
		t.Fatalf("Failed to log out: %v\n%s", err, output)
	}

	output, err = run("import", backupPath)
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}

	output, err = run("profile")
	if err != nil {
		t.Fatalf("Failed to show restored profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Alex") {
		t.Errorf("Expected restored profile, got: %s", output)
	}

	// AI commands fail cleanly without a key
	output, err = run("log", "a cheese sandwich")
	if err == nil {
		t.Errorf("Expected log to fail without GEMINI_API_KEY, got: %s", output)
	}
	if !strings.Contains(output, "GEMINI_API_KEY") {
		t.Errorf("Expected key hint in error output, got: %s", output)
	}
}
