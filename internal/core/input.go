package core

import (
	"fmt"
	"strings"
)

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - turn up
	ActionDown          // S, Down arrow - turn down
	ActionLeft          // A, Left arrow - turn left
	ActionRight         // D, Right arrow - turn right
	ActionToggle        // Space - start, pause/resume, restart after game over
	ActionQuit          // Q, Ctrl+C - exit the session
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionToggle: "toggle",
	ActionQuit:   "quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction converts a name produced by String back into an Action.
// "space", "start", "pause" and "restart" are accepted as aliases of toggle.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "space", "start", "pause", "restart":
		return ActionToggle, nil
	}
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}
