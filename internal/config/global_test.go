package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	t.Setenv("WARRIOR_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != StoreFile {
		t.Errorf("store = %q, want %q", cfg.Store, StoreFile)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WARRIOR_HOME", home)

	cfg := &Config{}
	if err := cfg.Set("store", "sqlite"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("timezone", "UTC"); err != nil {
		t.Fatal(err)
	}
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.json")); err != nil {
		t.Fatalf("config.json not written: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Store != StoreSQLite || got.Timezone != "UTC" {
		t.Errorf("loaded %+v", got)
	}
	loc, err := got.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v", loc, err)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WARRIOR_HOME", home)
	if err := os.WriteFile(filepath.Join(home, "config.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetValidation(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Set("store", "postgres"); err == nil {
		t.Error("accepted unknown store")
	}
	if err := cfg.Set("timezone", "Mars/Olympus"); err == nil {
		t.Error("accepted unknown timezone")
	}
	if err := cfg.Set("colour", "red"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("err = %v, want ErrUnknownKey", err)
	}
}

func TestResolvedDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WARRIOR_HOME", home)
	t.Setenv(EnvDataDir, "")

	cfg := &Config{}
	if got := cfg.ResolvedDataDir(); got != home {
		t.Errorf("default = %q, want %q", got, home)
	}
	cfg.DataDir = "/srv/warrior"
	if got := cfg.ResolvedDataDir(); got != "/srv/warrior" {
		t.Errorf("configured = %q", got)
	}
	t.Setenv(EnvDataDir, "/tmp/override")
	if got := cfg.ResolvedDataDir(); got != "/tmp/override" {
		t.Errorf("env override = %q", got)
	}
}
