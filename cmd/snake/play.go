package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/platform/gfx"
	"github.com/vovakirdan/snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game without the menu",
	Long: `Start playing right away. Esc opens the main menu.

Examples:
  snake play
  snake play --tui
  snake play --speed 20 --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd, true)
	},
}

// run loads the configuration and starts the selected frontend.
func run(cmd *cobra.Command, play bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, flagTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagTUI {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Debug("starting terminal frontend", "play", play)
		return tui.Run(ctx, cfg, logger, play)
	}

	logger.Debug("starting window frontend", "play", play)
	return gfx.New(cfg, logger).Run(play)
}
