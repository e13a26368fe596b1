package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 400, Height: 400, CellSize: 10}
	m, err := NewModel(cfg, 1, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Fruit.Value = 0

	if _, err := NewModel(cfg, 1, nil); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestModelStartsTickingOnToggle(t *testing.T) {
	m := newTestModel(t)
	if m.Init() != nil {
		t.Error("Init should not schedule ticks before start")
	}

	m, cmd := update(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("starting the game should schedule a tick")
	}
	if m.loop.Snapshot().Phase != snake.PhaseRunning {
		t.Errorf("phase = %v, expected running", m.loop.Snapshot().Phase)
	}

	m, cmd = update(t, m, TickMsg{Gen: m.sched.gen, Time: time.Now()})
	if cmd == nil {
		t.Error("an accepted tick should schedule the next one")
	}
	if head := m.loop.Snapshot().Head(); head != (snake.Point{X: 60, Y: 10}) {
		t.Errorf("Head = %v, expected (60, 10)", head)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	stale := m.sched.gen

	// Pause and resume opens a new generation
	m, _ = update(t, m, spaceKey)
	m, cmd := update(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("resume should schedule a tick")
	}
	if m.sched.gen == stale {
		t.Fatal("resume should open a new tick generation")
	}

	before := m.loop.Snapshot()
	m, cmd = update(t, m, TickMsg{Gen: stale, Time: time.Now()})
	if cmd != nil {
		t.Error("a stale tick should not schedule another")
	}
	if m.loop.Snapshot().Tick != before.Tick {
		t.Error("a stale tick should not advance the game")
	}
}

func TestModelIgnoresTicksWhilePaused(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, spaceKey)
	gen := m.sched.gen
	m, _ = update(t, m, spaceKey)

	m, cmd := update(t, m, TickMsg{Gen: gen, Time: time.Now()})
	if cmd != nil {
		t.Error("paused model should not schedule ticks")
	}
	if m.loop.Snapshot().Tick != 0 {
		t.Errorf("Tick = %d, expected 0", m.loop.Snapshot().Tick)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m, _ = update(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should collapse the help")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Snake!") {
		t.Error("initial view should show the start caption")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should include the help footer")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if lines := strings.Count(m.View(), "\n") + 1; lines != 50 {
		t.Errorf("view has %d lines, expected it placed in 50", lines)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "snake", core.ColorBrightGreen)
	s.SetCell(0, 1, core.Cell{Rune: '[', Fg: core.ColorBrightWhite, Bg: core.ColorRed})

	out := RenderScreen(s)
	if !strings.Contains(out, "snake") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("rendered output should have 2 rows: %q", out)
	}
}

func TestTickSchedulerGenerations(t *testing.T) {
	s := newTickScheduler(10 * time.Millisecond)

	if s.Cmd() != nil {
		t.Error("Cmd before Start should be nil")
	}

	s.Start()
	first := s.gen
	if s.Cmd() == nil {
		t.Fatal("Cmd after Start should open the chain")
	}
	if s.Cmd() != nil {
		t.Error("Cmd should only open the chain once")
	}

	// Start while running keeps the generation
	s.Start()
	if s.gen != first || s.Cmd() != nil {
		t.Error("repeated Start should be a no-op")
	}

	if !s.Accept(TickMsg{Gen: first}) {
		t.Error("current generation should be accepted")
	}

	s.Stop()
	if s.Accept(TickMsg{Gen: first}) {
		t.Error("ticks should be rejected after Stop")
	}
	if s.Next() != nil {
		t.Error("Next after Stop should be nil")
	}

	s.Start()
	if s.Accept(TickMsg{Gen: first}) {
		t.Error("old generation should be rejected after restart")
	}
	if !s.Accept(TickMsg{Gen: s.gen}) {
		t.Error("new generation should be accepted")
	}
}
