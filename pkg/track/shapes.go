package track

import "github.com/balidani/coaster-generator/pkg/geom"

// Canonical footprints. Every shape here is the right-handed variant at
// heading north; left-handed pieces are derived by mirroring and the four
// oriented variants by rotation (see catalog.go).
//
// All coordinates are (y, x, z) offsets from the piece anchor. A straight
// piece claims two elevation steps of its tile so that consecutive pieces
// stacked one half-step apart still collide.

func quad(c00, c01, c10, c11 int) geom.QuadCell {
	return geom.QuadCell{C00: c00 != 0, C01: c01 != 0, C10: c10 != 0, C11: c11 != 0}
}

func at(y, x, z int, q geom.QuadCell) Cell {
	return Cell{Offset: geom.Coord{Y: y, X: x, Z: z}, Quad: q}
}

var flatShape = Piece{
	Cells: []Cell{
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1},
}

var flatToUp25Shape = Piece{
	Cells: []Cell{
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: 1},
}

var up25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: 1},
}

var up25ToFlatShape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1},
}

var up25ToUp60Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 0, 2, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: 2},
}

var up60Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 0, 2, quad(1, 1, 1, 1)),
		at(0, 0, 3, quad(1, 1, 1, 1)),
		at(0, 0, 4, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: 4},
}

var down25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: -1},
}

var down25ToFlatShape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1},
}

var down25ToDown60Shape = Piece{
	Cells: []Cell{
		at(0, 0, -2, quad(1, 1, 1, 1)),
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: -2},
}

var down60Shape = Piece{
	Cells: []Cell{
		at(0, 0, -4, quad(1, 1, 1, 1)),
		at(0, 0, -3, quad(1, 1, 1, 1)),
		at(0, 0, -2, quad(1, 1, 1, 1)),
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 1, Z: -4},
}

// Radius-5 quarter turn, level. Interior tiles only claim the quadrants the
// track actually sweeps through.
var quarterTurn5Shape = Piece{
	Cells: []Cell{
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(1, 0, 0, quad(1, 1, 0, 1)),
		at(1, 1, 0, quad(1, 0, 1, 1)),
		at(1, 2, 0, quad(0, 0, 1, 0)),
		at(2, 1, 0, quad(1, 1, 0, 1)),
		at(2, 2, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 1, 1, quad(0, 0, 1, 0)),
		at(1, 0, 1, quad(1, 1, 0, 1)),
		at(1, 1, 1, quad(1, 0, 1, 1)),
		at(1, 2, 1, quad(0, 0, 1, 0)),
		at(2, 1, 1, quad(1, 1, 0, 1)),
		at(2, 2, 1, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 2, X: 3},
}

var quarterTurn5Up25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(0, 1, 1, quad(0, 0, 1, 0)),
		at(1, 0, 0, quad(1, 1, 0, 1)),
		at(1, 0, 1, quad(1, 1, 0, 1)),
		at(1, 0, 2, quad(1, 1, 0, 1)),
		at(1, 1, 1, quad(1, 0, 1, 1)),
		at(1, 1, 2, quad(1, 0, 1, 1)),
		at(1, 1, 3, quad(1, 0, 1, 1)),
		at(2, 1, 1, quad(1, 1, 0, 1)),
		at(2, 1, 2, quad(1, 1, 0, 1)),
		at(2, 1, 3, quad(1, 1, 0, 1)),
		at(1, 2, 2, quad(0, 0, 1, 0)),
		at(1, 2, 3, quad(0, 0, 1, 0)),
		at(2, 2, 2, quad(1, 1, 1, 1)),
		at(2, 2, 3, quad(1, 1, 1, 1)),
		at(2, 2, 4, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 2, X: 3, Z: 4},
}

var quarterTurn5Down25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(0, 1, -1, quad(0, 0, 1, 0)),
		at(1, 0, 1, quad(1, 1, 0, 1)),
		at(1, 0, 0, quad(1, 1, 0, 1)),
		at(1, 0, -1, quad(1, 1, 0, 1)),
		at(1, 0, -2, quad(1, 1, 0, 1)),
		at(1, 1, 0, quad(1, 0, 1, 1)),
		at(1, 1, -1, quad(1, 0, 1, 1)),
		at(1, 1, -2, quad(1, 0, 1, 1)),
		at(1, 1, -3, quad(1, 0, 1, 1)),
		at(2, 1, -1, quad(1, 1, 0, 1)),
		at(2, 1, -2, quad(1, 1, 0, 1)),
		at(2, 1, -3, quad(1, 1, 0, 1)),
		at(1, 2, -1, quad(0, 0, 1, 0)),
		at(1, 2, -2, quad(0, 0, 1, 0)),
		at(1, 2, -3, quad(0, 0, 1, 0)),
		at(2, 2, -2, quad(1, 1, 1, 1)),
		at(2, 2, -3, quad(1, 1, 1, 1)),
		at(2, 2, -4, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{Y: 2, X: 3, Z: -4},
}

var quarterTurn3Shape = Piece{
	Cells: []Cell{
		at(0, 0, 0, quad(1, 1, 0, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(1, 0, 0, quad(0, 1, 0, 0)),
		at(1, 1, 0, quad(1, 1, 0, 1)),
		at(0, 0, 1, quad(1, 1, 0, 1)),
		at(0, 1, 1, quad(0, 0, 1, 0)),
		at(1, 0, 1, quad(0, 1, 0, 0)),
		at(1, 1, 1, quad(1, 1, 0, 1)),
	},
	Exit: geom.Coord{Y: 1, X: 2},
}

var quarterTurn3Up25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 0, 1)),
		at(0, 0, 0, quad(1, 1, 0, 1)),
		at(0, 0, 1, quad(1, 1, 0, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(0, 1, 1, quad(0, 0, 1, 0)),
		at(1, 0, 0, quad(0, 1, 0, 0)),
		at(1, 0, 1, quad(0, 1, 0, 0)),
		at(1, 1, 0, quad(1, 1, 0, 1)),
		at(1, 1, 1, quad(1, 1, 0, 1)),
		at(1, 1, 2, quad(1, 1, 0, 1)),
	},
	Exit: geom.Coord{Y: 1, X: 2, Z: 2},
}

var quarterTurn3Down25Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 0, 1)),
		at(0, 0, 0, quad(1, 1, 0, 1)),
		at(0, 0, 1, quad(1, 1, 0, 1)),
		at(0, 1, 0, quad(0, 0, 1, 0)),
		at(0, 1, -1, quad(0, 0, 1, 0)),
		at(1, 0, 0, quad(0, 1, 0, 0)),
		at(1, 0, -1, quad(0, 1, 0, 0)),
		at(1, 1, 0, quad(1, 1, 0, 1)),
		at(1, 1, -1, quad(1, 1, 0, 1)),
		at(1, 1, -2, quad(1, 1, 0, 1)),
	},
	Exit: geom.Coord{Y: 1, X: 2, Z: -2},
}

// Steep single-tile turns climb within their own column.
var quarterTurn1Up60Shape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 0, 2, quad(1, 1, 1, 1)),
		at(0, 0, 3, quad(1, 1, 1, 1)),
		at(0, 0, 4, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{X: 1, Z: 4},
}

var quarterTurn1Down60Shape = Piece{
	Cells: []Cell{
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, -2, quad(1, 1, 1, 1)),
		at(0, 0, -3, quad(1, 1, 1, 1)),
		at(0, 0, -4, quad(1, 1, 1, 1)),
	},
	Exit: geom.Coord{X: 1, Z: -4},
}

// The vertical loop enters nose-up and exits nose-down one tile over. The
// upper half of the loop only claims the outer quadrant columns so a track
// can thread beneath it.
var rightVerticalLoopShape = Piece{
	Cells: []Cell{
		at(0, 0, -1, quad(1, 1, 1, 1)),
		at(0, 0, 0, quad(1, 1, 1, 1)),
		at(0, 0, 1, quad(1, 1, 1, 1)),
		at(1, 0, 0, quad(1, 1, 1, 1)),
		at(1, 0, 1, quad(1, 1, 1, 1)),
		at(1, 0, 2, quad(1, 1, 1, 1)),
		at(1, 0, 7, quad(0, 1, 0, 1)),
		at(1, 0, 8, quad(0, 1, 0, 1)),
		at(1, 0, 9, quad(0, 1, 0, 1)),
		at(2, 0, 1, quad(0, 1, 0, 0)),
		at(2, 0, 2, quad(0, 1, 0, 0)),
		at(2, 0, 3, quad(0, 1, 0, 0)),
		at(2, 0, 4, quad(0, 1, 0, 0)),
		at(2, 0, 5, quad(0, 1, 0, 0)),
		at(2, 0, 6, quad(0, 1, 0, 0)),
		at(2, 0, 7, quad(0, 1, 0, 0)),
		at(2, 0, 8, quad(0, 1, 0, 0)),
		at(1, 1, -1, quad(1, 1, 1, 1)),
		at(1, 1, 0, quad(1, 1, 1, 1)),
		at(1, 1, 1, quad(1, 1, 1, 1)),
		at(0, 1, 0, quad(1, 1, 1, 1)),
		at(0, 1, 1, quad(1, 1, 1, 1)),
		at(0, 1, 2, quad(1, 1, 1, 1)),
		at(0, 1, 7, quad(1, 0, 1, 0)),
		at(0, 1, 8, quad(1, 0, 1, 0)),
		at(0, 1, 9, quad(1, 0, 1, 0)),
		at(-1, 1, 1, quad(0, 0, 1, 0)),
		at(-1, 1, 2, quad(0, 0, 1, 0)),
		at(-1, 1, 3, quad(0, 0, 1, 0)),
		at(-1, 1, 4, quad(0, 0, 1, 0)),
		at(-1, 1, 5, quad(0, 0, 1, 0)),
		at(-1, 1, 6, quad(0, 0, 1, 0)),
		at(-1, 1, 7, quad(0, 0, 1, 0)),
		at(-1, 1, 8, quad(0, 0, 1, 0)),
	},
	Exit: geom.Coord{Y: 2, X: 1, Z: -1},
}

// rightHanded assigns each right-handed (or unhanded) piece id its canonical
// shape. Banked variants share the footprint of their unbanked profile;
// station segments share the footprint of flat.
var rightHanded = map[PieceID]Piece{
	BeginStation:    flatShape,
	MiddleStation:   flatShape,
	EndStation:      flatShape,
	Flat:            flatShape,
	FlatToRightBank: flatShape,
	RightBank:       flatShape,
	RightBankToFlat: flatShape,

	FlatToUp25:                       flatToUp25Shape,
	FlatToRightBankedUp25:            flatToUp25Shape,
	RightBankedFlatToRightBankedUp25: flatToUp25Shape,
	RightBankToUp25:                  flatToUp25Shape,

	// Entering a descent drops immediately, so the flat-to-down transitions
	// carry the full descending footprint.
	FlatToDown25:                       down25Shape,
	FlatToRightBankedDown25:            down25Shape,
	RightBankedFlatToRightBankedDown25: down25Shape,
	RightBankToDown25:                  down25Shape,

	Up25:                             up25Shape,
	Up25RightBanked:                  up25Shape,
	Up25ToRightBankedUp25:            up25Shape,
	RightBankedUp25ToUp25:            up25Shape,
	Up25ToFlat:                       up25ToFlatShape,
	Up25ToRightBank:                  up25ToFlatShape,
	RightBankedUp25ToRightBankedFlat: up25ToFlatShape,
	RightBankedUp25ToFlat:            up25ToFlatShape,
	Up25ToUp60:                       up25ToUp60Shape,
	Up60ToUp25:                       up25ToUp60Shape,
	Up60:                             up60Shape,

	Down25:                             down25Shape,
	Down25RightBanked:                  down25Shape,
	Down25ToRightBankedDown25:          down25Shape,
	RightBankedDown25ToDown25:          down25Shape,
	Down25ToFlat:                       down25ToFlatShape,
	Down25ToRightBank:                  down25ToFlatShape,
	RightBankedDown25ToRightBankedFlat: down25ToFlatShape,
	RightBankedDown25ToFlat:            down25ToFlatShape,
	Down25ToDown60:                     down25ToDown60Shape,
	Down60ToDown25:                     down25ToDown60Shape,
	Down60:                             down60Shape,

	BankedRightQuarterTurn5Tiles:      quarterTurn5Shape,
	RightBankedQuarterTurn5TileUp25:   quarterTurn5Up25Shape,
	RightBankedQuarterTurn5TileDown25: quarterTurn5Down25Shape,
	RightQuarterTurn3Tiles:            quarterTurn3Shape,
	RightBankedQuarterTurn3Tiles:      quarterTurn3Shape,
	RightBankedQuarterTurn3TileUp25:   quarterTurn3Up25Shape,
	RightBankedQuarterTurn3TileDown25: quarterTurn3Down25Shape,
	RightQuarterTurn1TileUp60:         quarterTurn1Up60Shape,
	RightQuarterTurn1TileDown60:       quarterTurn1Down60Shape,

	RightVerticalLoop: rightVerticalLoopShape,
}

// mirrorPairs maps every left-handed piece id to the right-handed id whose
// mirrored shape it takes.
var mirrorPairs = map[PieceID]PieceID{
	FlatToLeftBank:                   FlatToRightBank,
	FlatToLeftBankedUp25:             FlatToRightBankedUp25,
	FlatToLeftBankedDown25:           FlatToRightBankedDown25,
	LeftBank:                         RightBank,
	LeftBankToFlat:                   RightBankToFlat,
	LeftBankToUp25:                   RightBankToUp25,
	LeftBankToDown25:                 RightBankToDown25,
	LeftBankedFlatToLeftBankedUp25:   RightBankedFlatToRightBankedUp25,
	LeftBankedFlatToLeftBankedDown25: RightBankedFlatToRightBankedDown25,
	Up25LeftBanked:                   Up25RightBanked,
	BankedLeftQuarterTurn5Tiles:      BankedRightQuarterTurn5Tiles,
	LeftBankedQuarterTurn3Tiles:      RightBankedQuarterTurn3Tiles,
	Up25ToLeftBank:                   Up25ToRightBank,
	Up25ToLeftBankedUp25:             Up25ToRightBankedUp25,
	LeftBankedUp25ToUp25:             RightBankedUp25ToUp25,
	LeftBankedUp25ToLeftBankedFlat:   RightBankedUp25ToRightBankedFlat,
	LeftBankedUp25ToFlat:             RightBankedUp25ToFlat,
	LeftBankedQuarterTurn5TileUp25:   RightBankedQuarterTurn5TileUp25,
	LeftBankedQuarterTurn3TileUp25:   RightBankedQuarterTurn3TileUp25,
	LeftQuarterTurn1TileUp60:         RightQuarterTurn1TileUp60,
	Down25ToLeftBank:                 Down25ToRightBank,
	Down25ToLeftBankedDown25:         Down25ToRightBankedDown25,
	Down25LeftBanked:                 Down25RightBanked,
	LeftBankedDown25ToDown25:         RightBankedDown25ToDown25,
	LeftBankedDown25ToLeftBankedFlat: RightBankedDown25ToRightBankedFlat,
	LeftBankedDown25ToFlat:           RightBankedDown25ToFlat,
	LeftBankedQuarterTurn5TileDown25: RightBankedQuarterTurn5TileDown25,
	LeftBankedQuarterTurn3TileDown25: RightBankedQuarterTurn3TileDown25,
	LeftQuarterTurn1TileDown60:       RightQuarterTurn1TileDown60,
	LeftVerticalLoop:                 RightVerticalLoop,
	LeftQuarterTurn3Tiles:            RightQuarterTurn3Tiles,
}
