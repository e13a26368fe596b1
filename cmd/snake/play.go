package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

// helpRows is the space kept below the board for the help footer.
const helpRows = 2

var flagFit bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Start an interactive game of Snake.

Controls:
  Arrows/WASD  - Steer
  Space        - Start, pause/resume, restart after game over
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

The terminal is owned by the game, so logs are only written when
--log-file is given.

Examples:
  snake play
  snake play --fit
  snake play --seed 42 --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the board to fill the terminal")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagFit {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.FitTerminal(w, h, helpRows)
		} else {
			logger.Warn("cannot read terminal size, keeping configured board", "error", termErr)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := tui.Run(cfg, flagSeed, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
