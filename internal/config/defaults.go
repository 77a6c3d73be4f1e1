package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// builtinConfig returns the hardcoded configuration used if the embedded
// YAML cannot be parsed.
func builtinConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Snake Game",
		},
		Grid: GridConfig{
			CellSize: 20,
		},
		Snake: SnakeConfig{
			InitialLength: 5,
			Speed:         10,
		},
		Menu: MenuConfig{
			ButtonWidth:   200,
			ButtonHeight:  50,
			ButtonTop:     200,
			ButtonSpacing: 200,
		},
		FPS: 60,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Default returns the default configuration from the embedded YAML.
func Default() Config {
	cfg := builtinConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return builtinConfig()
	}
	return cfg
}
