package snake

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop drives a Game: it routes input, runs ticks and forwards snapshots to
// the renderer. It is the only caller of the game's mutating methods.
//
// Loop is not safe for concurrent use. HandleInput and Tick must be called
// from a single goroutine (the embedding application's event loop), which
// keeps every mutation atomic without locks.
type Loop struct {
	game   *Game
	ticker Ticker
	out    Renderer
	logger *log.Logger
	err    error
}

// NewLoop wires game, ticker and renderer together and renders the initial
// state. A nil logger discards output.
func NewLoop(game *Game, ticker Ticker, out Renderer, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loop{
		game:   game,
		ticker: ticker,
		out:    out,
		logger: logger,
	}
	l.requestRender()
	return l
}

// HandleInput applies one input event. Unknown actions are ignored, as is
// everything once the loop has halted.
func (l *Loop) HandleInput(a core.Action) {
	if l.err != nil {
		return
	}

	switch a {
	case core.ActionUp:
		l.turn(DirUp)
	case core.ActionDown:
		l.turn(DirDown)
	case core.ActionLeft:
		l.turn(DirLeft)
	case core.ActionRight:
		l.turn(DirRight)
	case core.ActionToggle:
		l.toggle()
	}
}

func (l *Loop) turn(d Direction) {
	if !l.game.Turn(d) {
		l.logger.Debug("turn dropped", "direction", d, "heading", l.game.Direction(), "phase", l.game.Phase())
		return
	}
	l.logger.Debug("turn", "direction", d)
}

func (l *Loop) toggle() {
	from := l.game.Phase()
	to := l.game.Toggle()
	l.logger.Debug("phase changed", "from", from, "to", to)

	if to == PhaseRunning {
		l.ticker.Start()
	} else {
		l.ticker.Stop()
	}
	l.requestRender()
}

// Tick runs one simulation step and renders the result. Ticks outside
// PhaseRunning are no-ops. An invariant violation halts the loop; the error
// is returned now and from every later call.
func (l *Loop) Tick() error {
	if l.err != nil {
		return l.err
	}
	if l.game.Phase() != PhaseRunning {
		return nil
	}

	res, err := l.game.Step()
	if err != nil {
		l.halt(err)
		return l.err
	}

	if res.Ate {
		l.logger.Debug("fruit eaten", "score", l.game.Score(), "length", l.game.Len())
	}
	if res.Phase != PhaseRunning {
		l.ticker.Stop()
		l.logger.Info("game over", "score", l.game.Score(), "collision", res.Collision)
	}

	l.requestRender()
	return nil
}

func (l *Loop) halt(err error) {
	l.err = fmt.Errorf("snake: loop halted at tick %d: %w", l.game.tick, err)
	l.ticker.Stop()
	l.logger.Error("loop halted", "error", err)
}

func (l *Loop) requestRender() {
	if l.out == nil {
		return
	}
	l.out.Render(l.game.Snapshot())
}

// Err returns the fatal error that halted the loop, if any.
func (l *Loop) Err() error {
	return l.err
}

// Snapshot returns the current game state.
func (l *Loop) Snapshot() Snapshot {
	return l.game.Snapshot()
}
