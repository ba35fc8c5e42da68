// ABOUTME: Lifelog configuration management with backend selection.
// ABOUTME: Handles settings, preferences, and storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lifelog/internal/charm"
	"github.com/harperreed/lifelog/internal/scoring"
	"github.com/harperreed/lifelog/internal/storage"
)

// Config stores lifelog tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. SQLite puts
	// lifelog.db here; the charm backend manages its own KV directory.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lifelog.
	DataDir string `json:"data_dir,omitempty"`

	// DefaultDays is the stats window used when --days is not given.
	// Defaults to 30.
	DefaultDays int `json:"default_days,omitempty"`

	// DisplayScale picks the score ceiling: 100 (default) or 10.
	DisplayScale int `json:"display_scale,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultDays returns the configured stats window, defaulting to 30.
func (c *Config) GetDefaultDays() int {
	if c.DefaultDays <= 0 {
		return 30
	}
	return c.DefaultDays
}

// GetScale returns the scoring scale for the configured display ceiling.
func (c *Config) GetScale() scoring.ScaleConfig {
	if c.DisplayScale == 10 {
		return scoring.SummaryScale()
	}
	return scoring.DefaultScale()
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()

	switch backend {
	case "sqlite":
		dbPath := filepath.Join(c.GetDataDir(), "lifelog.db")
		return storage.Open(dbPath)
	case "charm":
		return charm.InitClient()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lifelog", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
