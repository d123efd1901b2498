package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "facscrub-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &Config{
		Version:     "1",
		DBPath:      "/tmp/facops.db",
		SampleLimit: 5,
	}
	if err := SaveConfig(tmpDir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.DBPath != "/tmp/facops.db" {
		t.Errorf("DBPath = %q, want /tmp/facops.db", loaded.DBPath)
	}
	if loaded.SampleLimit != 5 {
		t.Errorf("SampleLimit = %d, want 5", loaded.SampleLimit)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "facscrub-config-missing")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if _, err := LoadConfig(tmpDir); err == nil {
		t.Error("expected error for missing config, got nil")
	}
}

func TestEffectiveSampleLimit(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		expected int
	}{
		{"nil config", nil, DefaultSampleLimit},
		{"unset limit", &Config{}, DefaultSampleLimit},
		{"negative limit", &Config{SampleLimit: -1}, DefaultSampleLimit},
		{"explicit limit", &Config{SampleLimit: 25}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.EffectiveSampleLimit(); got != tt.expected {
				t.Errorf("EffectiveSampleLimit() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".facscrub", "facscrub.db")

	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
