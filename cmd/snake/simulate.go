package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagScript string
	flagTicks  int
	flagFrames bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted game and print the result",
	Long: `Run a game without a terminal UI, driven by a script of actions.

The script is a comma separated list with one entry per tick. Each entry
is an action applied before that tick, or empty for no input:
  up, down, left, right   - Steer
  toggle (space, start, pause, restart)

Ticks only run while the game is running, as in play. After the script,
--ticks more idle ticks are run. The final frame is printed as text,
followed by the game snapshot as YAML.

Examples:
  snake simulate --script "toggle,,,down,,,left" --seed 42
  snake simulate --script toggle --ticks 100 --frames`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "toggle", "Comma separated actions, one per tick")
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Idle ticks to run after the script")
	simulateCmd.Flags().BoolVar(&flagFrames, "frames", false, "Print every frame, not just the last")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	if err := simulate(cmd.OutOrStdout()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate(out io.Writer) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}
	for range flagTicks {
		script = append(script, core.ActionNone)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	sim := simulation{
		out:    out,
		logger: logger,
		frames: flagFrames,
	}
	return sim.run(cfg, seed, script)
}

// parseScript splits a comma separated action list. Empty entries are idle
// ticks.
func parseScript(script string) ([]core.Action, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}

	parts := strings.Split(script, ",")
	actions := make([]core.Action, 0, len(parts))
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			actions = append(actions, core.ActionNone)
			continue
		}
		a, err := core.ParseAction(p)
		if err != nil {
			return nil, fmt.Errorf("script entry %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// simulation runs a headless game against a manual ticker.
type simulation struct {
	out    io.Writer
	logger *log.Logger
	frames bool

	screen *core.Screen
	last   snake.Snapshot
}

// Render keeps the latest snapshot and prints it when every frame is wanted.
func (s *simulation) Render(snap snake.Snapshot) {
	s.last = snap
	if s.frames {
		s.printFrame()
		fmt.Fprintln(s.out)
	}
}

func (s *simulation) printFrame() {
	snake.Paint(snake.NewScreenCanvas(s.screen), s.last)
	fmt.Fprintln(s.out, s.screen.String())
}

// run plays script one entry per tick and prints the final frame and snapshot.
func (s *simulation) run(cfg config.SnakeConfig, seed int64, script []core.Action) error {
	game, err := snake.New(cfg, seed)
	if err != nil {
		return err
	}
	s.screen = core.NewScreen(snake.ScreenSize(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize))

	ticker := &snake.ManualTicker{}
	loop := snake.NewLoop(game, ticker, s, s.logger)

	for _, a := range script {
		loop.HandleInput(a)
		if !ticker.Running() {
			continue
		}
		if err := loop.Tick(); err != nil {
			return err
		}
	}

	if !s.frames {
		s.printFrame()
	}

	data, err := yaml.Marshal(s.last)
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	fmt.Fprintf(s.out, "---\n%s", data)
	return nil
}
