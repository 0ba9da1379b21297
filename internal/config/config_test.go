package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/frenchdeck/internal/logs"
	"github.com/pkg/errors"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "frenchdeck", "config.toml")
	if got := GetConfigFilePath(); got != want {
		t.Fatalf("GetConfigFilePath() = %s, want %s", got, want)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, Default())
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSetters(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetSeed(42); err != nil {
		t.Fatal(err)
	}
	if err := SetLogLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if err := SetColor(false); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 42 || cfg.LogLevel != "debug" || cfg.Color {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "frenchdeck", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("seed = 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 7 || cfg.LogLevel != "info" || !cfg.Color {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "frenchdeck", "config.toml")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("seed = \"not a number\"\n"), 0644)

	if _, err := LoadConfig(); err == nil {
		t.Error("expected decode error")
	}
}

func TestSetLogLevel_RejectsUnknown(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SetLogLevel("debug"); err != nil {
		t.Fatal(err)
	}
	if err := SetLogLevel("loud"); !errors.Is(err, logs.ErrUnknownLevel) {
		t.Errorf("SetLogLevel(loud) error = %v, want ErrUnknownLevel", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q after rejected update, want debug", cfg.LogLevel)
	}
}
