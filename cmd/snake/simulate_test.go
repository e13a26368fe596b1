package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		script   string
		expected []core.Action
		wantErr  bool
	}{
		{"", nil, false},
		{"toggle", []core.Action{core.ActionToggle}, false},
		{"start,,up, left ,pause", []core.Action{
			core.ActionToggle, core.ActionNone, core.ActionUp, core.ActionLeft, core.ActionToggle,
		}, false},
		{"toggle,jump", nil, true},
	}

	for _, tc := range tests {
		got, err := parseScript(tc.script)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseScript(%q) expected error", tc.script)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseScript(%q) failed: %v", tc.script, err)
			continue
		}
		if len(got) != len(tc.expected) {
			t.Errorf("parseScript(%q) = %v, expected %v", tc.script, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("parseScript(%q)[%d] = %v, expected %v", tc.script, i, got[i], tc.expected[i])
			}
		}
	}
}

func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 400, Height: 400, CellSize: 10}
	return cfg
}

func TestSimulationRun(t *testing.T) {
	var out bytes.Buffer
	sim := simulation{out: &out, logger: log.New(io.Discard)}

	script, err := parseScript("toggle,,,")
	if err != nil {
		t.Fatal(err)
	}
	if err := sim.run(testConfig(), 1, script); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if sim.last.Phase != snake.PhaseRunning {
		t.Errorf("phase = %v, expected running", sim.last.Phase)
	}
	if sim.last.Tick != 4 {
		t.Errorf("Tick = %d, expected 4", sim.last.Tick)
	}
	if head := sim.last.Head(); head != (snake.Point{X: 90, Y: 10}) {
		t.Errorf("Head = %v, expected (90, 10)", head)
	}

	text := out.String()
	if !strings.Contains(text, "phase: running") {
		t.Errorf("output missing YAML phase:\n%s", text)
	}
	if !strings.Contains(text, "direction: right") {
		t.Errorf("output missing YAML direction:\n%s", text)
	}
	if !strings.Contains(text, "▓") {
		t.Error("output missing the board frame")
	}
}

func TestSimulationSkipsTicksBeforeStart(t *testing.T) {
	var out bytes.Buffer
	sim := simulation{out: &out, logger: log.New(io.Discard)}

	if err := sim.run(testConfig(), 1, []core.Action{core.ActionNone, core.ActionDown}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if sim.last.Tick != 0 || sim.last.Phase != snake.PhaseNotStarted {
		t.Errorf("expected no ticks before start, got tick %d phase %v", sim.last.Tick, sim.last.Phase)
	}
	if !strings.Contains(out.String(), "Snake!") {
		t.Error("not started frame should show the caption")
	}
}

func TestSimulationEndsOnWall(t *testing.T) {
	var out bytes.Buffer
	sim := simulation{out: &out, logger: log.New(io.Discard), frames: true}

	if err := sim.run(testConfig(), 1, []core.Action{core.ActionToggle, core.ActionUp, core.ActionNone}); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	if sim.last.Phase != snake.PhaseGameOver {
		t.Errorf("phase = %v, expected game_over", sim.last.Phase)
	}
	if sim.last.Tick != 2 {
		t.Errorf("Tick = %d, expected 2", sim.last.Tick)
	}
	if !strings.Contains(out.String(), "Game Over!") {
		t.Error("game over caption missing")
	}
}

func TestSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Player.InitialLength = 0
	sim := simulation{out: io.Discard, logger: log.New(io.Discard)}

	if err := sim.run(cfg, 1, nil); err == nil {
		t.Error("expected error for invalid config")
	}
}
