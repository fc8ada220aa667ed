package geom

import "fmt"

// Heading is the compass direction the train is travelling.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

// String returns the lowercase compass name.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("heading(%d)", uint8(h))
}

// TurnLeft returns the heading rotated 90 degrees counterclockwise.
func (h Heading) TurnLeft() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	}
	return North
}

// TurnRight returns the heading rotated 90 degrees clockwise.
func (h Heading) TurnRight() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	}
	return North
}

// Coord is a position in the track volume. Field order is y, x, z to match
// the layout of the piece footprint tables.
type Coord struct {
	Y, X, Z int
}

// Add returns c + d componentwise.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.Y + d.Y, c.X + d.X, c.Z + d.Z}
}

// Mirror reflects the coordinate across the x = 0 plane.
func (c Coord) Mirror() Coord {
	return Coord{c.Y, -c.X, c.Z}
}

// Rotate turns the coordinate 90 degrees clockwise about the vertical axis,
// mapping a north-facing offset to its east-facing equivalent.
func (c Coord) Rotate() Coord {
	return Coord{-c.X, c.Y, c.Z}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Y, c.X, c.Z)
}
