package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    400,
			Height:   230,
			CellSize: 10,
		},
		Player: PlayerConfig{
			InitialLength: 5,
		},
		Fruit: FruitConfig{
			Value: 1,
		},
		Loop: LoopConfig{
			TickInterval: 70 * time.Millisecond,
		},
		Placement: PlacementConfig{
			MaxAttempts: 64,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
