// Package snake implements the classic Snake rules and the fixed-tick loop
// that drives them.
package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots encode phases by name.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Collision describes what the head hit during a tick.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Player is the controllable body.
type Player struct {
	Direction Direction
	Body      []Point // Head at index 0
	Score     int
}

// Fruit is the single consumable on the board.
type Fruit struct {
	Position          Point `yaml:"position"`
	Value             int   `yaml:"value"`
	TicksUntilRespawn int   `yaml:"ticks_until_respawn"`
	RespawnInterval   int   `yaml:"respawn_interval"`
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Moved     bool
	Ate       bool
	Respawned bool // Fruit was relocated
	Collision Collision
	Phase     Phase
}

// Game holds the state of one Snake session and its transition rules.
// It is not safe for concurrent use; a single Loop owns it.
type Game struct {
	rng  *rand.Rand
	tick uint64

	// Geometry, fixed for the session
	width    int
	height   int
	cellSize int
	interior core.Rect // Playable area inside the one-cell wall

	initialLength int
	maxAttempts   int

	player Player
	fruit  Fruit
	phase  Phase
}

// New validates cfg and sets up a fresh session in PhaseNotStarted.
func New(cfg config.SnakeConfig, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := cfg.Board
	g := &Game{
		rng:           rand.New(rand.NewSource(seed)),
		width:         b.Width,
		height:        b.Height,
		cellSize:      b.CellSize,
		interior:      core.NewRect(0, 0, b.Width, b.Height).Inset(b.CellSize),
		initialLength: cfg.Player.InitialLength,
		maxAttempts:   cfg.Placement.MaxAttempts,
		fruit: Fruit{
			Value:           cfg.Fruit.Value,
			RespawnInterval: RespawnInterval(b.Width, b.Height, b.CellSize),
		},
	}
	g.Reset()
	return g, nil
}

// RespawnInterval returns how many ticks a fruit stays put on a board of the
// given size. Larger boards keep fruit longer.
func RespawnInterval(width, height, cellSize int) int {
	ticks := math.Sqrt(float64(width)*float64(height)) / 4 * 10 / float64(cellSize)
	return max(1, int(math.Ceil(ticks)))
}

// Reset restores the initial configuration: a straight body along the top
// row heading right, zero score, no fruit.
func (g *Game) Reset() {
	g.tick = 0
	g.phase = PhaseNotStarted

	body := make([]Point, 0, g.initialLength)
	for i := g.initialLength; i >= 1; i-- {
		body = append(body, Point{X: i * g.cellSize, Y: g.cellSize})
	}
	g.player = Player{Direction: DirRight, Body: body}

	g.fruit.Position = Unplaced
	g.fruit.TicksUntilRespawn = 0
}

// Turn requests a new heading. The most recent accepted turn before a tick
// wins. Reversals of the current heading are dropped, as is any turn while
// paused or over. Returns whether the heading was accepted.
func (g *Game) Turn(d Direction) bool {
	if g.phase == PhasePaused || g.phase == PhaseGameOver {
		return false
	}
	if d == g.player.Direction.Opposite() {
		return false
	}
	g.player.Direction = d
	return true
}

// Toggle handles the start/pause/restart input and returns the new phase.
func (g *Game) Toggle() Phase {
	switch g.phase {
	case PhaseNotStarted, PhasePaused:
		g.phase = PhaseRunning
	case PhaseRunning:
		g.phase = PhasePaused
	case PhaseGameOver:
		g.Reset()
	}
	return g.phase
}

// Step advances the game by one tick: move, fruit placement, collisions.
// Outside PhaseRunning it does nothing.
func (g *Game) Step() (StepResult, error) {
	if g.phase != PhaseRunning {
		return StepResult{Phase: g.phase}, nil
	}
	if len(g.player.Body) == 0 {
		return StepResult{Phase: g.phase}, ErrEmptyBody
	}

	g.tick++
	res := StepResult{Moved: true}

	tail := g.move()

	placed, err := g.updateFruit()
	if err != nil {
		return res, err
	}
	res.Respawned = placed

	res.Collision, res.Ate = g.detectCollision(tail)

	// The countdown was forced to zero; relocate now so the fruit never sits
	// under the body.
	if res.Ate && g.phase == PhaseRunning {
		placed, err = g.updateFruit()
		if err != nil {
			return res, err
		}
		res.Respawned = res.Respawned || placed
	}

	res.Phase = g.phase
	return res, nil
}

// move shifts the body one cell along the current heading and returns the
// tail cell it dropped.
func (g *Game) move() Point {
	body := g.player.Body
	head := body[0].Step(g.player.Direction, g.cellSize)
	tail := body[len(body)-1]

	copy(body[1:], body[:len(body)-1])
	body[0] = head

	return tail
}

// detectCollision checks wall, fruit and self in that order. A wall hit ends
// the game before anything else is mutated. Eating re-attaches the dropped
// tail.
func (g *Game) detectCollision(tail Point) (Collision, bool) {
	head := g.player.Body[0]

	if !g.interior.Contains(head.X, head.Y) {
		g.phase = PhaseGameOver
		return CollisionWall, false
	}

	ate := false
	if head == g.fruit.Position {
		g.player.Score += g.fruit.Value
		g.fruit.TicksUntilRespawn = 0
		g.player.Body = append(g.player.Body, tail)
		ate = true
	}

	for _, seg := range g.player.Body[1:] {
		if seg == head {
			g.phase = PhaseGameOver
			return CollisionSelf, ate
		}
	}

	return CollisionNone, ate
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.player.Score
}

// Direction returns the current heading.
func (g *Game) Direction() Direction {
	return g.player.Direction
}

// Head returns the head cell.
func (g *Game) Head() Point {
	if len(g.player.Body) == 0 {
		return Unplaced
	}
	return g.player.Body[0]
}

// Len returns the body length.
func (g *Game) Len() int {
	return len(g.player.Body)
}

// Fruit returns a copy of the fruit state.
func (g *Game) Fruit() Fruit {
	return g.fruit
}
