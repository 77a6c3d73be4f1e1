// snake is a classic Snake game with a graphical window and a terminal mode.
//
// Usage:
//
//	snake              - Open the main menu
//	snake play         - Start a game right away
//	snake config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--tui              - Play in the terminal instead of a window
//	--fps <rate>       - Set tick rate
//	--speed <moves>    - Snake moves per second
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagTUI      bool
	flagFPS      int
	flagSpeed    int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in a window or your terminal",
	Long: `Snake opens a main menu with Play and Exit buttons. Steer the snake
to the food to grow; the field wraps at the edges and running into
yourself starts over.

Controls:
  Arrows/WASD, D-pad, stick  - Steer (menu: move focus)
  G / gamepad Start          - Play from the menu
  Enter/Space / gamepad A    - Activate focused button
  Mouse click                - Press a menu button
  P                          - Pause
  Esc                        - Back to menu; exit from the menu

Examples:
  snake
  snake play --speed 15
  snake --tui
  snake play --seed 42 --log-level debug
  snake config > my-snake.yaml`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, false)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (also $SNAKE_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&flagTUI, "tui", false, "Play in the terminal")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagSpeed, "speed", 10, "Snake moves per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
