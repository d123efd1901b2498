package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSampleLimit is the number of rows shown per table in the
// post-run verification sample when no override is configured.
const DefaultSampleLimit = 10

// Config represents the flat facscrub configuration
type Config struct {
	Version     string `json:"version"`
	DBPath      string `json:"db_path,omitempty"`      // overrides the default database location
	SampleLimit int    `json:"sample_limit,omitempty"` // rows per table in verification samples
}

// LoadConfig reads .facscrub/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".facscrub", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".facscrub")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .facscrub dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// EffectiveSampleLimit returns the configured sample size, falling back to
// DefaultSampleLimit when the config does not set one.
func (c *Config) EffectiveSampleLimit() int {
	if c == nil || c.SampleLimit <= 0 {
		return DefaultSampleLimit
	}
	return c.SampleLimit
}

// DefaultDBPath returns the default database location under the home directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".facscrub", "facscrub.db"), nil
}
