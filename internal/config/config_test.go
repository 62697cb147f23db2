// ABOUTME: Tests for configuration defaults and persistence.
// ABOUTME: Covers backend/model defaults, path expansion, and save/load.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/nutri/internal/ai"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend = %s, want sqlite", got)
	}
	if got := cfg.GetModel(); got != ai.DefaultModel {
		t.Errorf("GetModel = %s, want %s", got, ai.DefaultModel)
	}
	if cfg.GetDataDir() == "" {
		t.Error("GetDataDir should never be empty")
	}
}

func TestOverrides(t *testing.T) {
	cfg := &Config{Backend: "charm", Model: "gemini-2.0-flash", DataDir: "/tmp/nutri-test"}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend = %s", got)
	}
	if got := cfg.GetModel(); got != "gemini-2.0-flash" {
		t.Errorf("GetModel = %s", got)
	}
	if got := cfg.GetDataDir(); got != "/tmp/nutri-test" {
		t.Errorf("GetDataDir = %s", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/nutri-data", filepath.Join(home, "nutri-data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "redis"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "~/nutri-data", Model: "gemini-2.0-flash"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "~/nutri-data" || loaded.Model != "gemini-2.0-flash" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoadMissingIsEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestAPIKeyEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gk-123")
	t.Setenv("API_KEY", "ak-456")
	if got := APIKey(); got != "gk-123" {
		t.Errorf("APIKey = %s, want GEMINI_API_KEY to win", got)
	}

	t.Setenv("GEMINI_API_KEY", "")
	if got := APIKey(); got != "ak-456" {
		t.Errorf("APIKey = %s, want API_KEY fallback", got)
	}
}
