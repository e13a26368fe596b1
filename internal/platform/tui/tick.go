// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// scheduler run that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickScheduler implements snake.Ticker on top of a tea.Tick chain.
// Every Start opens a new generation; ticks from an older generation are
// dropped, so pausing and resuming never leaves two chains running.
type tickScheduler struct {
	interval time.Duration
	gen      uint64
	running  bool
	armed    bool // Start was called and no command has been issued yet
}

func newTickScheduler(interval time.Duration) *tickScheduler {
	return &tickScheduler{interval: interval}
}

// Start enables ticking. It is a no-op when already running.
func (s *tickScheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.gen++
	s.armed = true
}

// Stop disables ticking. Ticks already in flight are dropped by Accept.
func (s *tickScheduler) Stop() {
	s.running = false
	s.armed = false
}

// Cmd returns the command that opens the chain after Start, or nil.
func (s *tickScheduler) Cmd() tea.Cmd {
	if !s.armed {
		return nil
	}
	s.armed = false
	return s.tick()
}

// Accept reports whether msg belongs to the current running chain.
func (s *tickScheduler) Accept(msg TickMsg) bool {
	return s.running && msg.Gen == s.gen
}

// Next continues the chain after an accepted tick.
func (s *tickScheduler) Next() tea.Cmd {
	if !s.running {
		return nil
	}
	return s.tick()
}

func (s *tickScheduler) tick() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
