package config

import (
	"testing"
	"time"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultGoal != 2000 {
		t.Fatalf("DefaultGoal = %d, want 2000", cfg.General.DefaultGoal)
	}
	if cfg.Interval() != time.Hour {
		t.Fatalf("Interval() = %s, want 1h", cfg.Interval())
	}
	if Exists() {
		t.Fatal("Exists() = true for missing config")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Reminder.IntervalMinutes = 30
	cfg.Appearance.Theme = "light"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Reminder.IntervalMinutes != 30 {
		t.Fatalf("IntervalMinutes = %d, want 30", loaded.Reminder.IntervalMinutes)
	}
	if loaded.Appearance.Theme != "light" {
		t.Fatalf("Theme = %q, want light", loaded.Appearance.Theme)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}
}

func TestSaveInterval(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SaveInterval(0); err != nil {
		t.Fatalf("SaveInterval: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interval() != 0 {
		t.Fatalf("Interval() = %s, want 0 (disabled)", cfg.Interval())
	}
}

func TestResolveTheme(t *testing.T) {
	t.Setenv("WATERPRO_THEME", "")
	t.Setenv("COLORFGBG", "")

	cfg := DefaultConfig()
	if got := ResolveTheme(cfg); got != "dark" {
		t.Fatalf("ResolveTheme default = %q, want dark", got)
	}

	cfg.Appearance.Theme = "light"
	if got := ResolveTheme(cfg); got != "light" {
		t.Fatalf("ResolveTheme configured = %q, want light", got)
	}

	cfg.Appearance.Theme = ""
	t.Setenv("COLORFGBG", "0;15")
	if got := ResolveTheme(cfg); got != "light" {
		t.Fatalf("ResolveTheme COLORFGBG=0;15 = %q, want light", got)
	}
}
