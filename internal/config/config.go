// Package config provides YAML-based configuration loading for the Snake
// game: window and grid geometry, snake speed, menu layout and logging.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snake/internal/core"
)

// Config contains all configuration for the game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Menu   MenuConfig   `yaml:"menu"`
	FPS    int          `yaml:"fps"`
	Seed   int64        `yaml:"seed"` // 0 = random based on time
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GridConfig defines the playing field grid.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per cell
}

// SnakeConfig defines snake behaviour.
type SnakeConfig struct {
	InitialLength int `yaml:"initial_length"`
	Speed         int `yaml:"speed"` // Moves per second
}

// MenuConfig defines the main menu button layout in window pixels.
type MenuConfig struct {
	ButtonWidth   int `yaml:"button_width"`
	ButtonHeight  int `yaml:"button_height"`
	ButtonTop     int `yaml:"button_top"`
	ButtonSpacing int `yaml:"button_spacing"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Used by the terminal frontend
}

// GridSize returns the playing field size in cells.
func (c Config) GridSize() (int, int) {
	if c.Grid.CellSize <= 0 {
		return 0, 0
	}
	return c.Window.Width / c.Grid.CellSize, c.Window.Height / c.Grid.CellSize
}

// RuntimeConfig converts the file configuration into the game's runtime config.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	w, h := c.GridSize()
	return core.RuntimeConfig{
		GridW:         w,
		GridH:         h,
		TickRate:      c.FPS,
		MoveEvery:     core.MoveInterval(c.FPS, c.Snake.Speed),
		InitialLength: c.Snake.InitialLength,
		Seed:          c.Seed,
	}
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	} else if c.Window.Width%c.Grid.CellSize != 0 || c.Window.Height%c.Grid.CellSize != 0 {
		errs = append(errs, fmt.Errorf("window %dx%d is not a whole number of %d px cells",
			c.Window.Width, c.Window.Height, c.Grid.CellSize))
	} else if w, h := c.GridSize(); w < 2 || h < 2 {
		errs = append(errs, fmt.Errorf("grid %dx%d is too small, need at least 2x2", w, h))
	}
	if c.Snake.InitialLength <= 0 {
		errs = append(errs, fmt.Errorf("snake.initial_length must be positive, got %d", c.Snake.InitialLength))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Snake.Speed <= 0 {
		errs = append(errs, fmt.Errorf("snake.speed must be positive, got %d", c.Snake.Speed))
	} else if c.FPS > 0 && c.Snake.Speed > c.FPS {
		errs = append(errs, fmt.Errorf("snake.speed %d exceeds fps %d", c.Snake.Speed, c.FPS))
	}
	if c.Menu.ButtonWidth <= 0 || c.Menu.ButtonHeight <= 0 {
		errs = append(errs, fmt.Errorf("menu buttons must have a positive size, got %dx%d",
			c.Menu.ButtonWidth, c.Menu.ButtonHeight))
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	return errors.Join(errs...)
}

// YAML returns the configuration encoded as YAML.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
