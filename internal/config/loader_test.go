package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// isolate points HOME at an empty directory and clears SNAKE_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvSeed, "")
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("Window should be 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Snake Game" {
		t.Errorf("Unexpected title %q", cfg.Window.Title)
	}
	if w, h := cfg.GridSize(); w != 40 || h != 30 {
		t.Errorf("Grid should be 40x30, got %dx%d", w, h)
	}
	if cfg.Snake.InitialLength != 5 || cfg.Snake.Speed != 10 {
		t.Errorf("Snake defaults wrong: %+v", cfg.Snake)
	}
	if cfg.Menu != (MenuConfig{ButtonWidth: 200, ButtonHeight: 50, ButtonTop: 200, ButtonSpacing: 200}) {
		t.Errorf("Menu defaults wrong: %+v", cfg.Menu)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestDefaultMatchesBuiltin(t *testing.T) {
	if Default() != builtinConfig() {
		t.Errorf("Embedded defaults drifted from builtin:\n%+v\n%+v", Default(), builtinConfig())
	}
}

func TestRuntimeConfig(t *testing.T) {
	cfg := Default()
	cfg.Seed = 42

	rc := cfg.RuntimeConfig()
	if rc.GridW != 40 || rc.GridH != 30 {
		t.Errorf("Grid = %dx%d, expected 40x30", rc.GridW, rc.GridH)
	}
	if rc.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", rc.TickRate)
	}
	if rc.MoveEvery != 6 {
		t.Errorf("10 moves/s at 60 fps should move every 6 ticks, got %d", rc.MoveEvery)
	}
	if rc.InitialLength != 5 || rc.Seed != 42 {
		t.Errorf("Unexpected runtime config %+v", rc)
	}
}

func TestLoadEmbeddedFallback(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Without files Load should return defaults, got %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "fps: 30\nsnake:\n  speed: 5\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 30 || cfg.Snake.Speed != 5 {
		t.Errorf("Overrides not applied: fps=%d speed=%d", cfg.FPS, cfg.Snake.Speed)
	}
	// Keys absent from the file keep their defaults
	if cfg.Snake.InitialLength != 5 || cfg.Window.Width != 800 {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	writeFile(t, path, "window:\n  title: From Env\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "From Env" {
		t.Errorf("SNAKE_CONFIG should select the file, got title %q", cfg.Window.Title)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "config.yaml"), "grid:\n  cell_size: 10\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w, h := cfg.GridSize(); w != 80 || h != 60 {
		t.Errorf("User config should give an 80x60 grid, got %dx%d", w, h)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "fps: [not a number\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"malformed yaml", bad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvSeed, "1234")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.LogLevel() != log.DebugLevel {
		t.Errorf("Log level override not applied: %q", cfg.Log.Level)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed override not applied: %d", cfg.Seed)
	}

	t.Setenv(EnvSeed, "abc")
	if _, err := Load(""); err == nil {
		t.Error("Invalid SNAKE_SEED should be an error")
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "SNAKE_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, key+"=from-dotenv\n")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(key); got != "from-dotenv" {
		t.Errorf("%s = %q, expected from-dotenv", key, got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Missing .env should be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"zero cell", func(c *Config) { c.Grid.CellSize = 0 }, "cell_size"},
		{"uneven cells", func(c *Config) { c.Grid.CellSize = 30 }, "whole number"},
		{"tiny grid", func(c *Config) { c.Window.Width, c.Window.Height = 20, 20 }, "too small"},
		{"zero length", func(c *Config) { c.Snake.InitialLength = 0 }, "initial_length"},
		{"zero fps", func(c *Config) { c.FPS = 0 }, "fps"},
		{"speed above fps", func(c *Config) { c.Snake.Speed = 120 }, "exceeds fps"},
		{"flat button", func(c *Config) { c.Menu.ButtonHeight = 0 }, "menu buttons"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Seed = 99

	data, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if !strings.Contains(string(data), "cell_size: 20") {
		t.Errorf("Encoded YAML missing cell_size:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Round trip mismatch:\n%+v\n%+v", loaded, cfg)
	}
}
