package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// frame is the loop's renderer. It keeps the latest snapshot for View.
type frame struct {
	last snake.Snapshot
}

func (f *frame) Render(s snake.Snapshot) {
	f.last = s
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a snake session.
type Model struct {
	loop     *snake.Loop
	sched    *tickScheduler
	frame    *frame
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
	err      error // Fatal loop error, reported by Run
}

// NewModel creates a new Bubble Tea model for the given configuration.
// A zero seed is replaced by the current time.
func NewModel(cfg config.SnakeConfig, seed int64, logger *log.Logger) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := snake.New(cfg, seed)
	if err != nil {
		return Model{}, err
	}

	sched := newTickScheduler(cfg.Loop.TickInterval)
	fr := &frame{}
	loop := snake.NewLoop(game, sched, fr, logger)
	logger.Debug("session created", "seed", seed, "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height))

	return Model{
		loop:   loop,
		sched:  sched,
		frame:  fr,
		screen: core.NewScreen(snake.ScreenSize(cfg.Board.Width, cfg.Board.Height, cfg.Board.CellSize)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}, nil
}

// Init waits for the first key; the game starts on toggle.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.loop.HandleInput(m.keys.Action(msg))
	return m, m.sched.Cmd()
}

// handleTick runs one simulation step for ticks of the current chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg) {
		return m, nil
	}

	if err := m.loop.Tick(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	return m, m.sched.Next()
}

// draw paints the latest snapshot into the screen buffer.
func (m Model) draw() {
	snake.Paint(snake.NewScreenCanvas(m.screen), m.frame.last)
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for one snake session. A fatal game
// error is returned after the terminal is restored.
func Run(cfg config.SnakeConfig, seed int64, logger *log.Logger) error {
	model, err := NewModel(cfg, seed, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
