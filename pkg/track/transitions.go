package track

import "github.com/balidani/coaster-generator/pkg/geom"

// Turn describes what a piece does to the travel heading.
type Turn uint8

const (
	TurnNone Turn = iota
	TurnLeft
	TurnRight
)

// Tables is the two-level state machine of the generator: which pieces turn
// the heading, and which pieces may legally follow which. Both are plain
// data so tests can enumerate them.
type Tables struct {
	turns      map[PieceID]Turn
	successors map[PieceID][]PieceID
}

// NewTables returns the standard transition tables.
func NewTables() *Tables {
	return &Tables{turns: standardTurns, successors: standardSuccessors}
}

// NewCustomTables builds tables from caller-supplied maps, for constrained
// searches and tests.
func NewCustomTables(turns map[PieceID]Turn, successors map[PieceID][]PieceID) *Tables {
	return &Tables{turns: turns, successors: successors}
}

// Turn reports how a piece changes the heading.
func (t *Tables) Turn(id PieceID) Turn {
	return t.turns[id]
}

// NextHeading applies a piece's turn to the current heading.
func (t *Tables) NextHeading(id PieceID, h geom.Heading) geom.Heading {
	switch t.turns[id] {
	case TurnLeft:
		return h.TurnLeft()
	case TurnRight:
		return h.TurnRight()
	}
	return h
}

// Successors returns the ordered list of pieces that may follow id. The
// list is shared and must not be modified.
func (t *Tables) Successors(id PieceID) []PieceID {
	return t.successors[id]
}

var standardTurns = map[PieceID]Turn{
	BankedRightQuarterTurn5Tiles:      TurnRight,
	RightBankedQuarterTurn5TileUp25:   TurnRight,
	RightBankedQuarterTurn5TileDown25: TurnRight,
	RightBankedQuarterTurn3Tiles:      TurnRight,
	RightBankedQuarterTurn3TileUp25:   TurnRight,
	RightQuarterTurn1TileUp60:         TurnRight,
	RightBankedQuarterTurn3TileDown25: TurnRight,
	RightQuarterTurn1TileDown60:       TurnRight,
	BankedLeftQuarterTurn5Tiles:       TurnLeft,
	LeftBankedQuarterTurn5TileUp25:    TurnLeft,
	LeftBankedQuarterTurn5TileDown25:  TurnLeft,
	LeftBankedQuarterTurn3Tiles:       TurnLeft,
	LeftBankedQuarterTurn3TileUp25:    TurnLeft,
	LeftQuarterTurn1TileUp60:          TurnLeft,
	LeftBankedQuarterTurn3TileDown25:  TurnLeft,
	LeftQuarterTurn1TileDown60:        TurnLeft,
	// The plain quarter turns only appear in seeded prologues; every turn
	// the free search places is banked.
	RightQuarterTurn3Tiles: TurnRight,
	LeftQuarterTurn3Tiles:  TurnLeft,
}

// Successor lists, one per exit profile. Two pieces ending with the same
// profile share a list. Order matters: the random tie-break indexes into
// these, so reordering changes the output distribution.

var afterFlat = []PieceID{
	Flat,
	FlatToLeftBank,
	FlatToRightBank,
	FlatToUp25,
	FlatToLeftBankedUp25,
	FlatToRightBankedUp25,
	FlatToDown25,
	FlatToLeftBankedDown25,
	FlatToRightBankedDown25,
}

var afterLeftBank = []PieceID{
	LeftBank,
	LeftBankToFlat,
	LeftBankToUp25,
	LeftBankToDown25,
	LeftBankedFlatToLeftBankedUp25,
	LeftBankedFlatToLeftBankedDown25,
	BankedLeftQuarterTurn5Tiles,
	LeftBankedQuarterTurn3Tiles,
}

var afterRightBank = []PieceID{
	RightBank,
	RightBankToFlat,
	RightBankToUp25,
	RightBankToDown25,
	RightBankedFlatToRightBankedUp25,
	RightBankedFlatToRightBankedDown25,
	BankedRightQuarterTurn5Tiles,
	RightBankedQuarterTurn3Tiles,
}

var afterUp25 = []PieceID{
	Up25ToFlat,
	Up25ToLeftBank,
	Up25ToRightBank,
	Up25,
	Up25ToLeftBankedUp25,
	Up25ToRightBankedUp25,
	Up25ToUp60,
	LeftVerticalLoop,
	RightVerticalLoop,
}

var afterUp25LeftBanked = []PieceID{
	Up25LeftBanked,
	LeftBankedUp25ToUp25,
	LeftBankedUp25ToLeftBankedFlat,
	LeftBankedUp25ToFlat,
	LeftBankedQuarterTurn5TileUp25,
	LeftBankedQuarterTurn3TileUp25,
}

var afterUp25RightBanked = []PieceID{
	Up25RightBanked,
	RightBankedUp25ToUp25,
	RightBankedUp25ToRightBankedFlat,
	RightBankedUp25ToFlat,
	RightBankedQuarterTurn5TileUp25,
	RightBankedQuarterTurn3TileUp25,
}

var afterUp60 = []PieceID{
	Up60ToUp25,
	Up60,
	RightQuarterTurn1TileUp60,
	LeftQuarterTurn1TileUp60,
}

var afterDown25 = []PieceID{
	Down25ToFlat,
	Down25ToLeftBank,
	Down25ToRightBank,
	Down25,
	Down25ToLeftBankedDown25,
	Down25ToRightBankedDown25,
	Down25ToDown60,
}

var afterDown25LeftBanked = []PieceID{
	Down25LeftBanked,
	LeftBankedDown25ToDown25,
	LeftBankedDown25ToLeftBankedFlat,
	LeftBankedDown25ToFlat,
	LeftBankedQuarterTurn5TileDown25,
	LeftBankedQuarterTurn3TileDown25,
}

var afterDown25RightBanked = []PieceID{
	Down25RightBanked,
	RightBankedDown25ToDown25,
	RightBankedDown25ToRightBankedFlat,
	RightBankedDown25ToFlat,
	RightBankedQuarterTurn5TileDown25,
	RightBankedQuarterTurn3TileDown25,
}

var afterDown60 = []PieceID{
	Down60ToDown25,
	Down60,
	RightQuarterTurn1TileDown60,
	LeftQuarterTurn1TileDown60,
}

var standardSuccessors = map[PieceID][]PieceID{
	Flat:                    afterFlat,
	FlatToLeftBank:          afterLeftBank,
	FlatToRightBank:         afterRightBank,
	FlatToUp25:              afterUp25,
	FlatToLeftBankedUp25:    afterUp25LeftBanked,
	FlatToRightBankedUp25:   afterUp25RightBanked,
	FlatToDown25:            afterDown25,
	FlatToLeftBankedDown25:  afterDown25LeftBanked,
	FlatToRightBankedDown25: afterDown25RightBanked,

	LeftBank:                         afterLeftBank,
	LeftBankToFlat:                   afterFlat,
	LeftBankToUp25:                   afterUp25,
	LeftBankToDown25:                 afterDown25,
	LeftBankedFlatToLeftBankedUp25:   afterUp25LeftBanked,
	LeftBankedFlatToLeftBankedDown25: afterDown25LeftBanked,
	Up25LeftBanked:                   afterUp25LeftBanked,
	BankedLeftQuarterTurn5Tiles:      afterLeftBank,
	LeftBankedQuarterTurn3Tiles:      afterLeftBank,

	RightBank:                          afterRightBank,
	RightBankToFlat:                    afterFlat,
	RightBankToUp25:                    afterUp25,
	RightBankToDown25:                  afterDown25,
	RightBankedFlatToRightBankedUp25:   afterUp25RightBanked,
	RightBankedFlatToRightBankedDown25: afterDown25RightBanked,
	Up25RightBanked:                    afterUp25RightBanked,
	BankedRightQuarterTurn5Tiles:       afterRightBank,
	RightBankedQuarterTurn3Tiles:       afterRightBank,

	Up25ToFlat:                       afterFlat,
	Up25ToLeftBank:                   afterLeftBank,
	Up25ToRightBank:                  afterRightBank,
	Up25:                             afterUp25,
	Up25ToLeftBankedUp25:             afterUp25LeftBanked,
	Up25ToRightBankedUp25:            afterUp25RightBanked,
	Up25ToUp60:                       afterUp60,
	LeftBankedUp25ToUp25:             afterUp25,
	LeftBankedUp25ToLeftBankedFlat:   afterLeftBank,
	LeftBankedUp25ToFlat:             afterFlat,
	LeftBankedQuarterTurn5TileUp25:   afterUp25LeftBanked,
	LeftBankedQuarterTurn3TileUp25:   afterUp25LeftBanked,
	RightBankedUp25ToUp25:            afterUp25,
	RightBankedUp25ToRightBankedFlat: afterRightBank,
	RightBankedUp25ToFlat:            afterFlat,
	RightBankedQuarterTurn5TileUp25:  afterUp25RightBanked,
	RightBankedQuarterTurn3TileUp25:  afterUp25RightBanked,

	Up60ToUp25:                afterUp25,
	Up60:                      afterUp60,
	RightQuarterTurn1TileUp60: afterUp60,
	LeftQuarterTurn1TileUp60:  afterUp60,

	Down25ToFlat:                       afterFlat,
	Down25ToLeftBank:                   afterLeftBank,
	Down25ToRightBank:                  afterRightBank,
	Down25:                             afterDown25,
	Down25ToLeftBankedDown25:           afterDown25LeftBanked,
	Down25ToRightBankedDown25:          afterDown25RightBanked,
	Down25ToDown60:                     afterDown60,
	Down25LeftBanked:                   afterDown25LeftBanked,
	Down25RightBanked:                  afterDown25RightBanked,
	LeftBankedDown25ToDown25:           afterDown25,
	LeftBankedDown25ToLeftBankedFlat:   afterLeftBank,
	LeftBankedDown25ToFlat:             afterFlat,
	LeftBankedQuarterTurn5TileDown25:   afterDown25LeftBanked,
	LeftBankedQuarterTurn3TileDown25:   afterDown25LeftBanked,
	RightBankedDown25ToDown25:          afterDown25,
	RightBankedDown25ToRightBankedFlat: afterRightBank,
	RightBankedDown25ToFlat:            afterFlat,
	RightBankedQuarterTurn5TileDown25:  afterDown25RightBanked,
	RightBankedQuarterTurn3TileDown25:  afterDown25RightBanked,

	Down60ToDown25:              afterDown25,
	Down60:                      afterDown60,
	RightQuarterTurn1TileDown60: afterDown60,
	LeftQuarterTurn1TileDown60:  afterDown60,

	// Loops exit pointing down, so both map to the descending list.
	LeftVerticalLoop:  afterDown25,
	RightVerticalLoop: afterDown25,
}
