package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidani/coaster-generator/pkg/geom"
	"github.com/balidani/coaster-generator/pkg/grid"
	"github.com/balidani/coaster-generator/pkg/track"
	"github.com/balidani/coaster-generator/pkg/validation"
)

// squareCircuitOptions admits exactly one path: four flat-shaped pieces
// cycling begin/middle/end/turn around a square, closing after 16 pieces.
func squareCircuitOptions() Options {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.MinTrackLength = 15
	opts.MaxAttempts = 1
	opts.Dims = grid.DefaultDims
	opts.Start = geom.Coord{Y: 2, X: 3, Z: 0}
	opts.StartHeading = geom.East
	opts.Terminal = geom.Coord{Y: 2, X: 3, Z: 0}
	opts.TerminalHeading = geom.East
	opts.Reserved = nil
	opts.Prologue = []track.PieceID{track.BeginStation}
	opts.Tables = track.NewCustomTables(
		map[track.PieceID]track.Turn{
			track.LeftQuarterTurn3Tiles: track.TurnLeft,
		},
		map[track.PieceID][]track.PieceID{
			track.BeginStation:          {track.MiddleStation},
			track.MiddleStation:         {track.EndStation},
			track.EndStation:            {track.LeftQuarterTurn3Tiles},
			track.LeftQuarterTurn3Tiles: {track.BeginStation},
		},
	)
	return opts
}

func TestSyntheticMinimumCircuit(t *testing.T) {
	layout, err := New(squareCircuitOptions()).Generate()
	require.NoError(t, err)

	want := []track.PieceID{
		track.BeginStation, track.MiddleStation, track.EndStation, track.LeftQuarterTurn3Tiles,
		track.BeginStation, track.MiddleStation, track.EndStation, track.LeftQuarterTurn3Tiles,
		track.BeginStation, track.MiddleStation, track.EndStation, track.LeftQuarterTurn3Tiles,
		track.BeginStation, track.MiddleStation, track.EndStation, track.LeftQuarterTurn3Tiles,
	}
	require.Len(t, layout.Pieces, len(want))
	for i, p := range layout.Pieces {
		assert.Equal(t, want[i], p.ID, "piece %d", i)
		assert.Equal(t, track.DefaultRotation, p.Rotation, "piece %d rotation", i)
	}
	assert.Equal(t, 1, layout.Attempts)
}

func TestSyntheticCircuitReplaysClean(t *testing.T) {
	opts := squareCircuitOptions()
	layout, err := New(opts).Generate()
	require.NoError(t, err)

	report := validation.CheckDesign(
		track.NewCatalog(), opts.Tables, layout.Pieces,
		validation.Config{
			Dims:            opts.Dims,
			Start:           opts.Start,
			StartHeading:    opts.StartHeading,
			Terminal:        opts.Terminal,
			TerminalHeading: opts.TerminalHeading,
		})
	assert.True(t, report.Valid, "replay findings: %+v", report.Errors)
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	first, err := New(squareCircuitOptions()).Generate()
	require.NoError(t, err)
	second, err := New(squareCircuitOptions()).Generate()
	require.NoError(t, err)

	assert.Equal(t, first.Pieces, second.Pieces)
	assert.Equal(t, first.Backtracks, second.Backtracks)
	assert.Equal(t, first.Seed, second.Seed)
}

func TestDeadEndExhaustsWithinStepLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.MaxAttempts = 1
	opts.Dims = grid.Dims{Y: 2, X: 2, Z: 2}
	opts.Start = geom.Coord{}
	opts.StartHeading = geom.East
	opts.Terminal = geom.Coord{Y: 1, X: 1, Z: 1}
	opts.TerminalHeading = geom.East
	opts.Reserved = nil
	opts.Prologue = []track.PieceID{track.Flat}
	opts.Tables = track.NewCustomTables(
		map[track.PieceID]track.Turn{},
		map[track.PieceID][]track.PieceID{track.Flat: {track.Flat}},
	)

	_, err := New(opts).Generate()
	assert.ErrorIs(t, err, ErrAttemptsExhausted)
}

func TestPrologueFailureAbandonsAttempt(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	opts.MaxAttempts = 3
	opts.Dims = grid.Dims{Y: 2, X: 2, Z: 2}
	opts.Start = geom.Coord{}
	opts.Reserved = nil

	_, err := New(opts).Generate()
	assert.ErrorIs(t, err, ErrAttemptsExhausted)
}

func TestPrologueGeometry(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	g := New(opts)
	a := g.newAttempt()

	for _, id := range opts.Prologue {
		require.True(t, a.tryPush(id), "prologue piece %s", id)
	}

	// Fold the oriented exits by hand and compare against the stack.
	anchor := opts.Start
	heading := opts.StartHeading
	for _, id := range opts.Prologue {
		piece, ok := g.catalog.Piece(id, heading)
		require.True(t, ok)
		anchor = anchor.Add(piece.Exit)
		heading = g.tables.NextHeading(id, heading)
	}

	top := a.stack[len(a.stack)-1]
	assert.Equal(t, anchor, top.anchor)
	assert.Equal(t, heading, top.heading)
	// Two banked 5-tile climbing turns take east to west.
	assert.Equal(t, geom.West, top.heading)
	assert.Len(t, top.pieces, len(opts.Prologue))
}

func TestLoopIndex(t *testing.T) {
	assert.Equal(t, -1, loopIndex([]track.PieceID{track.Flat, track.Up25}))
	assert.Equal(t, 1, loopIndex([]track.PieceID{track.Flat, track.RightVerticalLoop}))
	assert.Equal(t, 0, loopIndex([]track.PieceID{track.LeftVerticalLoop, track.Flat}))
	// With both loops present the left loop lookup overwrites the right.
	assert.Equal(t, 0, loopIndex([]track.PieceID{
		track.LeftVerticalLoop, track.Flat, track.RightVerticalLoop,
	}))
}

func TestChooseNextPrefersLoop(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	g := New(opts)

	fr := &frame{
		space:   grid.NewSpace(opts.Dims),
		pieces:  []track.Placed{track.Place(track.Up25)},
		anchor:  geom.Coord{Y: 4, X: 2, Z: 1},
		heading: geom.East,
		failed:  make(map[track.PieceID]struct{}),
	}
	a := &attempt{g: g, stack: []*frame{fr}}

	require.True(t, a.chooseNext(fr))
	top := a.stack[len(a.stack)-1]
	got := top.pieces[len(top.pieces)-1].ID
	assert.Equal(t, track.LeftVerticalLoop, got)
}

func TestHeightPruneBoundary(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 1
	g := New(opts)

	makeAttempt := func(sequenceLen int) *attempt {
		fr := &frame{
			space:   grid.NewSpace(opts.Dims),
			pieces:  make([]track.Placed, sequenceLen),
			anchor:  geom.Coord{Y: 0, X: 0, Z: 9},
			heading: geom.East,
			failed:  make(map[track.PieceID]struct{}),
		}
		return &attempt{g: g, stack: []*frame{fr}}
	}

	// At ten pieces the prune is inactive and the exit may touch the top
	// layer.
	assert.True(t, makeAttempt(10).tryPush(track.FlatToUp25))

	// At 21 pieces the limit is 11 - 21*0.05 = 9.95, below the exit at
	// z = 10.
	assert.False(t, makeAttempt(21).tryPush(track.FlatToUp25))
}

func TestBacktrackChargesParentFrame(t *testing.T) {
	// A single-candidate table over a blocked exit forces an immediate
	// backtrack; the popped piece must land in the parent's failed set.
	opts := DefaultOptions()
	opts.Seed = 1
	opts.MaxAttempts = 1
	opts.Dims = grid.Dims{Y: 1, X: 3, Z: 2}
	opts.Start = geom.Coord{}
	opts.StartHeading = geom.East
	opts.Terminal = geom.Coord{Y: 0, X: 9, Z: 0}
	opts.TerminalHeading = geom.East
	opts.Reserved = nil
	opts.Prologue = []track.PieceID{track.Flat}
	opts.Tables = track.NewCustomTables(
		map[track.PieceID]track.Turn{},
		map[track.PieceID][]track.PieceID{track.Flat: {track.Flat}},
	)

	g := New(opts)
	a := g.newAttempt()
	_, ok := a.run()
	assert.False(t, ok)

	seed := a.stack[0]
	_, charged := seed.failed[track.Flat]
	assert.True(t, charged, "seed frame should record the unwound piece")
	assert.Positive(t, a.steps)
}
