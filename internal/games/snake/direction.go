package snake

import "fmt"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText lets snapshots encode headings by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Point represents a board coordinate in pixels.
// Coordinates on the grid are always multiples of the cell size.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Unplaced marks a fruit that has not been spawned yet.
var Unplaced = Point{X: -1, Y: -1}

// Step returns the point one step of the given size away in direction d.
func (p Point) Step(d Direction, size int) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: p.Y - size}
	case DirDown:
		return Point{X: p.X, Y: p.Y + size}
	case DirLeft:
		return Point{X: p.X - size, Y: p.Y}
	default:
		return Point{X: p.X + size, Y: p.Y}
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
