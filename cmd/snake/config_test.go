package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake/internal/config"
)

func TestConfigCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvSeed, "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--speed", "5", "--seed", "42"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{"speed: 5", "seed: 42", "cell_size: 20", "title: Snake Game"} {
		if !strings.Contains(got, want) {
			t.Errorf("Output missing %q:\n%s", want, got)
		}
	}
}

func TestNewLoggerTUI(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Log.File = filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()

	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("Level should be debug, got %v", logger.GetLevel())
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "missing", "dir", "snake.log")
	if _, _, err := newLogger(cfg, true); err == nil {
		t.Error("Unwritable log file should be an error")
	}
}
