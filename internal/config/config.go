// Package config manages closet configuration and the .closet directory
// structure. It handles loading, saving, and initializing the wardrobe
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	ClosetDir    = ".closet"
	ConfigFile   = "config"
	DatabaseFile = "closet.db"
)

// DefaultQuotaMiB is the capacity the persisted slot must fit in.
const DefaultQuotaMiB = 5

// Config represents the closet configuration.
type Config struct {
	QuotaMiB int `toml:"quota_mib"`

	path string // path to .closet directory
}

// FindClosetRoot finds the .closet directory by walking up from the
// current directory.
func FindClosetRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		closetPath := filepath.Join(dir, ClosetDir)
		if info, err := os.Stat(closetPath); err == nil && info.IsDir() {
			return closetPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a closet wardrobe (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the .closet directory.
func Load() (*Config, error) {
	closetPath, err := FindClosetRoot()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(closetPath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = closetPath
	return &cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// ClosetPath returns the path to the .closet directory.
func (c *Config) ClosetPath() string {
	return c.path
}

// DatabasePath returns the path to the bbolt database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// QuotaBytes returns the store capacity in bytes, falling back to the
// default when the config carries no positive value.
func (c *Config) QuotaBytes() int64 {
	quota := c.QuotaMiB
	if quota <= 0 {
		quota = DefaultQuotaMiB
	}
	return int64(quota) * 1024 * 1024
}

// Initialize creates a new .closet directory with initial configuration.
func Initialize(quotaMiB int) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	closetPath := filepath.Join(cwd, ClosetDir)

	// Check if already initialized
	if _, err := os.Stat(closetPath); err == nil {
		return nil, fmt.Errorf("closet wardrobe already exists")
	}

	if err := os.MkdirAll(closetPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .closet directory: %w", err)
	}

	if quotaMiB <= 0 {
		quotaMiB = DefaultQuotaMiB
	}

	cfg := &Config{
		QuotaMiB: quotaMiB,
		path:     closetPath,
	}

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(closetPath)
		return nil, err
	}

	return cfg, nil
}
