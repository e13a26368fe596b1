package snake

import (
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Renderer receives a snapshot after every state change. Implementations
// must not block the loop; the snapshot is theirs to keep.
type Renderer interface {
	Render(s Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) {
	f(s)
}

// Canvas is the set of draw operations a snapshot is painted with.
// Coordinates are board pixels.
type Canvas interface {
	DrawBoard(width, height, wall int)
	DrawSegment(p Point, size int, head bool)
	DrawFruit(p Point, size int)
	DrawScore(score int)
	DrawCaption(text, hint string)
}

// Paint issues the draw commands for one frame: board, score, body, fruit,
// then the caption for the current phase.
func Paint(c Canvas, s Snapshot) {
	c.DrawBoard(s.Width, s.Height, s.CellSize)

	if s.Phase != PhaseNotStarted {
		c.DrawScore(s.Score)
	}

	for i, seg := range s.Body {
		c.DrawSegment(seg, s.CellSize, i == 0)
	}

	if s.FruitPlaced() {
		c.DrawFruit(s.Fruit.Position, s.CellSize)
	}

	switch s.Phase {
	case PhaseNotStarted:
		c.DrawCaption("Snake!", "Press space to start")
	case PhasePaused:
		c.DrawCaption("Paused!", "Press space to resume")
	case PhaseGameOver:
		c.DrawCaption("Game Over!", "Press space to restart")
	}
}

// cellCols is how many terminal columns one grid cell takes; two keeps cells
// roughly square.
const cellCols = 2

// Cell styles
var (
	wallCell   = core.Cell{Rune: '▓', Fg: core.ColorDarkGray}
	floorCell  = core.Cell{Rune: ' '}
	bodyLeft   = core.Cell{Rune: '[', Fg: core.ColorBrightWhite, Bg: core.ColorRed}
	bodyRight  = core.Cell{Rune: ']', Fg: core.ColorBrightWhite, Bg: core.ColorRed}
	headLeft   = core.Cell{Rune: '[', Fg: core.ColorBrightWhite, Bg: core.ColorBrightRed}
	headRight  = core.Cell{Rune: ']', Fg: core.ColorBrightWhite, Bg: core.ColorBrightRed}
	fruitLeft  = core.Cell{Rune: '(', Fg: core.ColorBrightGreen, Bg: core.ColorForest}
	fruitRight = core.Cell{Rune: ')', Fg: core.ColorBrightGreen, Bg: core.ColorForest}
)

// ScreenSize returns the screen dimensions a board needs.
func ScreenSize(width, height, cellSize int) (cols, rows int) {
	return width / cellSize * cellCols, height / cellSize
}

// ScreenCanvas paints onto a core.Screen, two columns per grid cell.
type ScreenCanvas struct {
	dst *core.Screen
}

// NewScreenCanvas creates a canvas drawing into dst.
func NewScreenCanvas(dst *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{dst: dst}
}

// DrawBoard clears the screen, paints the wall and empties the play area.
func (c *ScreenCanvas) DrawBoard(width, height, wall int) {
	c.dst.Clear()
	board := core.NewRect(0, 0, width/wall, height/wall)
	c.dst.FillRect(board.Scale(cellCols, 1), wallCell)
	c.dst.FillRect(board.Inset(1).Scale(cellCols, 1), floorCell)
}

// DrawSegment paints one body cell, brighter for the head.
func (c *ScreenCanvas) DrawSegment(p Point, size int, head bool) {
	left, right := bodyLeft, bodyRight
	if head {
		left, right = headLeft, headRight
	}
	c.drawCell(p, size, left, right)
}

// DrawFruit paints the fruit cell.
func (c *ScreenCanvas) DrawFruit(p Point, size int) {
	c.drawCell(p, size, fruitLeft, fruitRight)
}

// DrawScore writes the score under the screen center.
func (c *ScreenCanvas) DrawScore(score int) {
	_, cy := c.dst.Bounds().Center()
	c.dst.DrawTextCentered(cy+2, strconv.Itoa(score), core.ColorGray)
}

// DrawCaption writes a centered caption with a hint line below it.
func (c *ScreenCanvas) DrawCaption(text, hint string) {
	_, cy := c.dst.Bounds().Center()
	c.dst.DrawTextCentered(cy-1, text, core.ColorBlue)
	if hint != "" {
		c.dst.DrawTextCentered(cy, hint, core.ColorGray)
	}
}

func (c *ScreenCanvas) drawCell(p Point, size int, left, right core.Cell) {
	x := p.X / size * cellCols
	y := p.Y / size
	c.dst.SetCell(x, y, left)
	c.dst.SetCell(x+1, y, right)
}
