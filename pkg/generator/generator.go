// Package generator synthesizes closed roller-coaster circuits with a
// depth-first backtracking search over the piece transition tables.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/balidani/coaster-generator/pkg/geom"
	"github.com/balidani/coaster-generator/pkg/grid"
	"github.com/balidani/coaster-generator/pkg/track"
)

// ErrAttemptsExhausted is returned when MaxAttempts attempts all failed.
var ErrAttemptsExhausted = errors.New("generator: no circuit found within attempt limit")

// Layout is a finished circuit plus search statistics.
type Layout struct {
	Pieces     []track.Placed `json:"pieces"`
	Attempts   int            `json:"attempts"`
	Backtracks int            `json:"backtracks"`
	Seed       int64          `json:"seed"`
}

// Generator runs generation attempts until one yields a closed circuit.
type Generator struct {
	opts    Options
	catalog *track.Catalog
	tables  *track.Tables
	rng     *rand.Rand
	seed    int64
}

// New builds a generator from options. A zero Seed is replaced with the
// current time; the seed actually used is reported on the Layout.
func New(opts Options) *Generator {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = track.NewCatalog()
	}
	tables := opts.Tables
	if tables == nil {
		tables = track.NewTables()
	}
	return &Generator{
		opts:    opts,
		catalog: catalog,
		tables:  tables,
		rng:     rand.New(rand.NewSource(seed)),
		seed:    seed,
	}
}

// Generate runs attempts until a circuit is found. With MaxAttempts == 0 it
// only returns on success.
func (g *Generator) Generate() (*Layout, error) {
	backtracks := 0
	for n := 1; g.opts.MaxAttempts == 0 || n <= g.opts.MaxAttempts; n++ {
		g.logf("generating, attempt %d", n)

		a := g.newAttempt()
		pieces, ok := a.run()
		backtracks += a.steps
		if ok {
			return &Layout{
				Pieces:     pieces,
				Attempts:   n,
				Backtracks: backtracks,
				Seed:       g.seed,
			}, nil
		}
	}
	return nil, ErrAttemptsExhausted
}

func (g *Generator) logf(format string, args ...any) {
	if g.opts.Logger != nil {
		g.opts.Logger.Printf(format, args...)
	}
}

// frame is one level of the search stack. It owns its grid copy; the grid
// reflects exactly the occupancy of the pieces in its sequence plus the
// reserved cells.
type frame struct {
	space   *grid.Space
	pieces  []track.Placed
	anchor  geom.Coord
	heading geom.Heading
	failed  map[track.PieceID]struct{}
}

type attempt struct {
	g     *Generator
	stack []*frame
	steps int
}

func (g *Generator) newAttempt() *attempt {
	space := grid.NewSpace(g.opts.Dims)
	for _, c := range g.opts.Reserved {
		space.Set(c, geom.FullCell)
	}
	seed := &frame{
		space:   space,
		anchor:  g.opts.Start,
		heading: g.opts.StartHeading,
		failed:  make(map[track.PieceID]struct{}),
	}
	return &attempt{g: g, stack: []*frame{seed}}
}

// run drives one attempt to success, step exhaustion, or a dead search
// space. It reports the placed sequence on success.
func (a *attempt) run() ([]track.Placed, bool) {
	for _, id := range a.g.opts.Prologue {
		if !a.tryPush(id) {
			a.g.logf("prologue piece %s did not fit, abandoning attempt", id)
			return nil, false
		}
	}

	for {
		top := a.stack[len(a.stack)-1]

		if top.anchor == a.g.opts.Terminal && top.heading == a.g.opts.TerminalHeading {
			if len(top.pieces) > a.g.opts.MinTrackLength {
				return top.pieces, true
			}
			return nil, false
		}

		if a.chooseNext(top) {
			continue
		}

		// Candidates exhausted: pop and charge the popped piece to the
		// parent frame.
		popped := a.stack[len(a.stack)-1]
		a.stack = a.stack[:len(a.stack)-1]
		parent := a.stack[len(a.stack)-1]
		parent.failed[popped.pieces[len(popped.pieces)-1].ID] = struct{}{}

		if len(parent.pieces) == 0 {
			// Unwound back into the seed frame; the space below the
			// prologue is exhausted.
			return nil, false
		}

		a.steps++
		if a.steps > a.g.opts.StepsPerAttempt {
			return nil, false
		}
	}
}

// chooseNext picks successors of the top frame's last piece until one
// places or none remain. Failed candidates are recorded on the frame so a
// later visit does not retry them.
func (a *attempt) chooseNext(top *frame) bool {
	successors := a.g.tables.Successors(top.pieces[len(top.pieces)-1].ID)
	candidates := make([]track.PieceID, 0, len(successors))
	for _, id := range successors {
		if _, failed := top.failed[id]; !failed {
			candidates = append(candidates, id)
		}
	}

	for len(candidates) > 0 {
		i := -1
		if a.g.opts.LoopBias {
			i = loopIndex(candidates)
		}
		if i == -1 {
			i = a.g.rng.Intn(len(candidates))
		}

		id := candidates[i]
		if a.tryPush(id) {
			return true
		}
		top.failed[id] = struct{}{}
		candidates = append(candidates[:i], candidates[i+1:]...)
	}
	return false
}

// loopIndex returns the index of a vertical loop in candidates, or -1. A
// right loop is found first and a left loop overwrites it; keeping that
// order preserves the output distribution of the search.
func loopIndex(candidates []track.PieceID) int {
	i := -1
	for j, id := range candidates {
		if id == track.RightVerticalLoop {
			i = j
			break
		}
	}
	for j, id := range candidates {
		if id == track.LeftVerticalLoop {
			i = j
			break
		}
	}
	return i
}

// tryPush attempts to place one piece at the top frame's anchor and
// heading, pushing a new frame on success.
func (a *attempt) tryPush(id track.PieceID) bool {
	top := a.stack[len(a.stack)-1]

	piece, ok := a.g.catalog.Piece(id, top.heading)
	if !ok {
		return false
	}

	newAnchor := top.anchor.Add(piece.Exit)
	if !top.space.InBounds(newAnchor) {
		return false
	}

	// Past ten pieces the ceiling drops with the sequence length, pushing
	// long circuits back toward the ground.
	limit := float64(a.g.opts.Dims.Z)
	if len(top.pieces) > 10 {
		limit -= float64(len(top.pieces)) * a.g.opts.HeightLimitFactor
	}
	if float64(newAnchor.Z) > limit {
		return false
	}

	space := top.space.Clone()
	if !space.Place(piece, top.anchor) {
		return false
	}

	pieces := make([]track.Placed, len(top.pieces), len(top.pieces)+1)
	copy(pieces, top.pieces)
	pieces = append(pieces, track.Place(id))

	a.stack = append(a.stack, &frame{
		space:   space,
		pieces:  pieces,
		anchor:  newAnchor,
		heading: a.g.tables.NextHeading(id, top.heading),
		failed:  make(map[track.PieceID]struct{}),
	})
	return true
}
