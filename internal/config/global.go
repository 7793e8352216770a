// Package config reads and writes the user-level settings in
// ~/.warrior/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/debug"
)

// Storage backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// EnvDataDir overrides data_dir for one invocation.
const EnvDataDir = "WARRIOR_DATA_DIR"

var ErrUnknownKey = errors.New("unknown config key")

// Config holds user-level preferences.
type Config struct {
	Store    string `json:"store,omitempty"`    // "file" (default), "sqlite" or "memory"
	DataDir  string `json:"data_dir,omitempty"` // where the snapshot lives; default ~/.warrior
	Timezone string `json:"timezone,omitempty"` // IANA zone the day boundaries follow; default local
}

// Dir returns the warrior base directory, creating it if needed.
func Dir() string {
	dir, err := debug.HomeDir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), ".warrior")
	}
	os.MkdirAll(dir, 0755)
	return dir
}

func configPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config.json, returning defaults if the file is absent.
func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{Store: StoreFile}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath(), err)
	}
	if cfg.Store == "" {
		cfg.Store = StoreFile
	}
	return &cfg, nil
}

// Save writes cfg to config.json.
func Save(cfg *Config) error {
	if cfg == nil {
		cfg = &Config{}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}

// ResolvedDataDir is $WARRIOR_DATA_DIR, then data_dir, then Dir().
func (c *Config) ResolvedDataDir() string {
	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		return dir
	}
	if c.DataDir != "" {
		return c.DataDir
	}
	return Dir()
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := clock.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Values returns every key with its current value.
func (c *Config) Values() map[string]string {
	return map[string]string{
		"store":    c.Store,
		"data_dir": c.DataDir,
		"timezone": c.Timezone,
	}
}

// Keys lists the settable keys in display order.
func Keys() []string {
	keys := []string{"store", "data_dir", "timezone"}
	sort.Strings(keys)
	return keys
}

// Set validates and assigns one key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "store":
		switch value {
		case StoreFile, StoreSQLite, StoreMemory:
			c.Store = value
		default:
			return fmt.Errorf("store must be %s, %s or %s, got %q", StoreFile, StoreSQLite, StoreMemory, value)
		}
	case "data_dir":
		c.DataDir = value
	case "timezone":
		if _, err := clock.LoadLocation(value); err != nil {
			return fmt.Errorf("timezone %q: %w", value, err)
		}
		c.Timezone = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}
