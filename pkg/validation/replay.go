// Package validation replays finished layouts against the catalogue and
// occupancy rules and reports what it finds.
package validation

import (
	"fmt"

	"github.com/balidani/coaster-generator/pkg/geom"
	"github.com/balidani/coaster-generator/pkg/grid"
	"github.com/balidani/coaster-generator/pkg/track"
)

// Config fixes the pose a replay starts from and the pose it must end at.
type Config struct {
	Dims            grid.Dims
	Start           geom.Coord
	StartHeading    geom.Heading
	Terminal        geom.Coord
	TerminalHeading geom.Heading
	Reserved        []geom.Coord
}

// DefaultConfig matches the production generator: the fixed station pose
// and the reserved approach tiles.
func DefaultConfig() Config {
	return Config{
		Dims:            grid.DefaultDims,
		Start:           geom.Coord{Y: 0, X: 4, Z: 0},
		StartHeading:    geom.East,
		Terminal:        geom.Coord{Y: 0, X: 3, Z: 0},
		TerminalHeading: geom.East,
		Reserved: []geom.Coord{
			{Y: 0, X: 3, Z: 0},
			{Y: 0, X: 3, Z: 1},
		},
	}
}

// CheckDesign replays a piece sequence from the start pose, placing each
// oriented footprint into a fresh grid. It reports unknown pieces,
// out-of-bounds cells, quadrant collisions, and an open circuit, plus
// informational stats about the layout.
func CheckDesign(catalog *track.Catalog, tables *track.Tables, pieces []track.Placed, cfg Config) *Report {
	r := NewReport()

	if len(pieces) == 0 {
		r.AddError(Result{
			Level:   LevelCircuit,
			Message: "design contains no track elements",
		})
		return r
	}

	space := grid.NewSpace(cfg.Dims)
	for _, c := range cfg.Reserved {
		space.Set(c, geom.FullCell)
	}

	anchor := cfg.Start
	heading := cfg.StartHeading
	peak := 0
	loops := 0

	for i, p := range pieces {
		piece, ok := catalog.Piece(p.ID, heading)
		if !ok {
			r.AddError(Result{
				Level:   LevelCatalog,
				Message: fmt.Sprintf("no footprint for piece %s at heading %s", p.ID, heading),
				Element: p.ID.String(),
				Index:   i,
			})
			return r
		}

		for _, cell := range piece.Cells {
			abs := anchor.Add(cell.Offset)
			if !space.InBounds(abs) {
				r.AddError(Result{
					Level:       LevelSpatial,
					Message:     "footprint cell out of bounds",
					Element:     p.ID.String(),
					Index:       i,
					ActualValue: abs.String(),
				})
				return r
			}
			merged, ok := space.At(abs).Merge(cell.Quad)
			if !ok {
				r.AddError(Result{
					Level:       LevelSpatial,
					Message:     "quadrant collision with earlier track",
					Element:     p.ID.String(),
					Index:       i,
					ActualValue: abs.String(),
				})
				return r
			}
			space.Set(abs, merged)
		}

		anchor = anchor.Add(piece.Exit)
		heading = tables.NextHeading(p.ID, heading)
		if anchor.Z > peak {
			peak = anchor.Z
		}
		if p.ID == track.LeftVerticalLoop || p.ID == track.RightVerticalLoop {
			loops++
		}
	}

	if anchor != cfg.Terminal || heading != cfg.TerminalHeading {
		r.AddError(Result{
			Level:       LevelCircuit,
			Message:     "track does not close back onto the station approach",
			ActualValue: fmt.Sprintf("%s %s", anchor, heading),
			Expected:    fmt.Sprintf("%s %s", cfg.Terminal, cfg.TerminalHeading),
		})
	}

	r.AddInfo(Result{
		Level:       LevelCircuit,
		Message:     fmt.Sprintf("%d track elements", len(pieces)),
		ActualValue: len(pieces),
	})
	r.AddInfo(Result{
		Level:       LevelCircuit,
		Message:     fmt.Sprintf("%d vertical loops", loops),
		ActualValue: loops,
	})
	r.AddInfo(Result{
		Level:       LevelSpatial,
		Message:     fmt.Sprintf("peak elevation %d", peak),
		ActualValue: peak,
	})
	return r
}
