// Package grid holds the dense quadrant-occupancy model of the track volume.
package grid

import (
	"github.com/balidani/coaster-generator/pkg/geom"
	"github.com/balidani/coaster-generator/pkg/track"
)

// Dims are the tile dimensions of a track volume.
type Dims struct {
	Y int `yaml:"y"`
	X int `yaml:"x"`
	Z int `yaml:"z"`
}

// DefaultDims is the volume every generated design must fit in.
var DefaultDims = Dims{Y: 9, X: 12, Z: 11}

// Space is a dense 3D array of quadrant cells.
type Space struct {
	dims  Dims
	cells []geom.QuadCell
}

// NewSpace allocates an empty space of the given dimensions.
func NewSpace(d Dims) *Space {
	return &Space{dims: d, cells: make([]geom.QuadCell, d.Y*d.X*d.Z)}
}

// Dims returns the dimensions of the space.
func (s *Space) Dims() Dims { return s.dims }

func (s *Space) index(c geom.Coord) int {
	return s.dims.X*s.dims.Y*c.Z + s.dims.X*c.Y + c.X
}

// At reads the cell at c. The caller guarantees c is in bounds.
func (s *Space) At(c geom.Coord) geom.QuadCell {
	return s.cells[s.index(c)]
}

// Set overwrites the cell at c. The caller guarantees c is in bounds.
func (s *Space) Set(c geom.Coord, q geom.QuadCell) {
	s.cells[s.index(c)] = q
}

// InBounds reports whether every component of c falls inside the volume.
func (s *Space) InBounds(c geom.Coord) bool {
	if c.Y < 0 || c.Y >= s.dims.Y {
		return false
	}
	if c.X < 0 || c.X >= s.dims.X {
		return false
	}
	if c.Z < 0 || c.Z >= s.dims.Z {
		return false
	}
	return true
}

// Clone returns a deep copy of the space.
func (s *Space) Clone() *Space {
	cells := make([]geom.QuadCell, len(s.cells))
	copy(cells, s.cells)
	return &Space{dims: s.dims, cells: cells}
}

// Place merges an oriented piece footprint into the space at the given
// anchor. It reports false when any cell falls out of bounds or collides
// with existing occupancy. Writes happen cell by cell, so a failed Place
// leaves earlier cells merged; callers place into a Clone and discard it on
// failure.
func (s *Space) Place(p track.Piece, anchor geom.Coord) bool {
	for _, cell := range p.Cells {
		abs := anchor.Add(cell.Offset)
		if !s.InBounds(abs) {
			return false
		}
		merged, ok := s.At(abs).Merge(cell.Quad)
		if !ok {
			return false
		}
		s.Set(abs, merged)
	}
	return true
}
