package snake

// Snapshot is an immutable copy of the game state handed to renderers and
// used for determinism checks.
type Snapshot struct {
	Tick      uint64    `yaml:"tick"`
	Phase     Phase     `yaml:"phase"`
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	CellSize  int       `yaml:"cell_size"`
	Direction Direction `yaml:"direction"`
	Score     int       `yaml:"score"`
	Body      []Point   `yaml:"body"`
	Fruit     Fruit     `yaml:"fruit"`
}

// Snapshot returns the current game snapshot. The body is copied.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.player.Body))
	copy(body, g.player.Body)

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Width:     g.width,
		Height:    g.height,
		CellSize:  g.cellSize,
		Direction: g.player.Direction,
		Score:     g.player.Score,
		Body:      body,
		Fruit:     g.fruit,
	}
}

// Head returns the head cell, or Unplaced for an empty body.
func (s Snapshot) Head() Point {
	if len(s.Body) == 0 {
		return Unplaced
	}
	return s.Body[0]
}

// FruitPlaced reports whether the fruit has been spawned.
func (s Snapshot) FruitPlaced() bool {
	return s.Fruit.Position != Unplaced
}
