package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfig   = "SNAKE_CONFIG"
	EnvLogLevel = "SNAKE_LOG_LEVEL"
	EnvSeed     = "SNAKE_SEED"
)

// LocalConfigPath is the project-local config file, relative to the working directory.
const LocalConfigPath = "configs/snake.yaml"

// LoadDotEnv loads environment variables from a .env file.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load loads the game configuration and applies environment overrides.
// Search order: customPath -> $SNAKE_CONFIG -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are layered over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath == "" {
		customPath = os.Getenv(EnvConfig)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, applyEnv(&cfg)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		if fileCfg, ok := tryLoad(path, cfg); ok {
			cfg = fileCfg
			break
		}
	}

	return cfg, applyEnv(&cfg)
}

// tryLoad layers the file at path over base. Unreadable or malformed files are skipped.
func tryLoad(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// applyEnv applies SNAKE_* environment overrides.
func applyEnv(cfg *Config) error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		cfg.Seed = seed
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}
