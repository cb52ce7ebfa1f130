// Package config loads and saves the waterpro TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all waterpro configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Reminder   ReminderConfig   `toml:"reminder"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultGoal int    `toml:"default_goal"`
	DataDir     string `toml:"data_dir,omitempty"`
}

// ReminderConfig holds the reminder cadence. 0 disables reminders.
type ReminderConfig struct {
	IntervalMinutes int `toml:"interval_minutes"`
}

// AppearanceConfig holds theme settings. An empty theme is resolved from
// the environment at startup.
type AppearanceConfig struct {
	Theme string `toml:"theme,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General:  GeneralConfig{DefaultGoal: 2000},
		Reminder: ReminderConfig{IntervalMinutes: 60},
	}
}

// Interval returns the reminder cadence as a duration.
func (c Config) Interval() time.Duration {
	if c.Reminder.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.Reminder.IntervalMinutes) * time.Minute
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "waterpro")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "waterpro")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir resolves the data directory holding the record blob and the
// journal: WATERPRO_DATA_DIR env, then the configured dir, then the XDG
// data home.
func DataDir(cfg Config) string {
	if dir := os.Getenv("WATERPRO_DATA_DIR"); dir != "" {
		return dir
	}
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "waterpro")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "waterpro")
}

// ResolveTheme returns the effective theme name: the configured value,
// then WATERPRO_THEME, then a COLORFGBG light-background heuristic,
// defaulting to dark.
func ResolveTheme(cfg Config) string {
	if cfg.Appearance.Theme != "" {
		return cfg.Appearance.Theme
	}
	if env := os.Getenv("WATERPRO_THEME"); env == "light" || env == "dark" {
		return env
	}
	// COLORFGBG is "fg;bg"; bg 7 or 15 means a light terminal.
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		bg := parts[len(parts)-1]
		if bg == "7" || bg == "15" {
			return "light"
		}
	}
	return "dark"
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// SaveInterval persists a new reminder cadence, preserving the rest of
// the config.
func SaveInterval(interval time.Duration) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.Reminder.IntervalMinutes = int(interval.Minutes())
	return Save(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
