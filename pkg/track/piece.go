package track

import (
	"fmt"

	"github.com/balidani/coaster-generator/pkg/geom"
)

// PieceID identifies a track element. The numeric values are the RCT2 track
// element bytes, written verbatim into TD6 files.
type PieceID uint8

const (
	Flat           PieceID = 0
	EndStation     PieceID = 1
	BeginStation   PieceID = 2
	MiddleStation  PieceID = 3
	Up25           PieceID = 4
	Up60           PieceID = 5
	FlatToUp25     PieceID = 6
	Up25ToUp60     PieceID = 7
	Up60ToUp25     PieceID = 8
	Up25ToFlat     PieceID = 9
	Down25         PieceID = 10
	Down60         PieceID = 11
	FlatToDown25   PieceID = 12
	Down25ToDown60 PieceID = 13
	Down60ToDown25 PieceID = 14
	Down25ToFlat   PieceID = 15

	FlatToLeftBank               PieceID = 18
	FlatToRightBank              PieceID = 19
	LeftBankToFlat               PieceID = 20
	RightBankToFlat              PieceID = 21
	BankedLeftQuarterTurn5Tiles  PieceID = 22
	BankedRightQuarterTurn5Tiles PieceID = 23
	LeftBankToUp25               PieceID = 24
	RightBankToUp25              PieceID = 25
	Up25ToLeftBank               PieceID = 26
	Up25ToRightBank              PieceID = 27
	LeftBankToDown25             PieceID = 28
	RightBankToDown25            PieceID = 29
	Down25ToLeftBank             PieceID = 30
	Down25ToRightBank            PieceID = 31
	LeftBank                     PieceID = 32
	RightBank                    PieceID = 33

	LeftVerticalLoop             PieceID = 40
	RightVerticalLoop            PieceID = 41
	LeftQuarterTurn3Tiles        PieceID = 42
	RightQuarterTurn3Tiles       PieceID = 43
	LeftBankedQuarterTurn3Tiles  PieceID = 44
	RightBankedQuarterTurn3Tiles PieceID = 45

	LeftQuarterTurn1TileUp60    PieceID = 95
	RightQuarterTurn1TileUp60   PieceID = 96
	LeftQuarterTurn1TileDown60  PieceID = 97
	RightQuarterTurn1TileDown60 PieceID = 98

	Up25LeftBanked    PieceID = 110
	Up25RightBanked   PieceID = 111
	Down25LeftBanked  PieceID = 115
	Down25RightBanked PieceID = 116

	LeftBankedQuarterTurn3TileUp25     PieceID = 211
	RightBankedQuarterTurn3TileUp25    PieceID = 212
	LeftBankedQuarterTurn3TileDown25   PieceID = 213
	RightBankedQuarterTurn3TileDown25  PieceID = 214
	LeftBankedQuarterTurn5TileUp25     PieceID = 215
	RightBankedQuarterTurn5TileUp25    PieceID = 216
	LeftBankedQuarterTurn5TileDown25   PieceID = 217
	RightBankedQuarterTurn5TileDown25  PieceID = 218
	Up25ToLeftBankedUp25               PieceID = 219
	Up25ToRightBankedUp25              PieceID = 220
	LeftBankedUp25ToUp25               PieceID = 221
	RightBankedUp25ToUp25              PieceID = 222
	Down25ToLeftBankedDown25           PieceID = 223
	Down25ToRightBankedDown25          PieceID = 224
	LeftBankedDown25ToDown25           PieceID = 225
	RightBankedDown25ToDown25          PieceID = 226
	LeftBankedFlatToLeftBankedUp25     PieceID = 227
	RightBankedFlatToRightBankedUp25   PieceID = 228
	LeftBankedUp25ToLeftBankedFlat     PieceID = 229
	RightBankedUp25ToRightBankedFlat   PieceID = 230
	LeftBankedFlatToLeftBankedDown25   PieceID = 231
	RightBankedFlatToRightBankedDown25 PieceID = 232
	LeftBankedDown25ToLeftBankedFlat   PieceID = 233
	RightBankedDown25ToRightBankedFlat PieceID = 234
	FlatToLeftBankedUp25               PieceID = 235
	FlatToRightBankedUp25              PieceID = 236
	LeftBankedUp25ToFlat               PieceID = 237
	RightBankedUp25ToFlat              PieceID = 238
	FlatToLeftBankedDown25             PieceID = 239
	FlatToRightBankedDown25            PieceID = 240
	LeftBankedDown25ToFlat             PieceID = 241
	RightBankedDown25ToFlat            PieceID = 242
)

// DefaultRotation is the rotation qualifier written next to every generated
// element. The TD6 convention is that 4 means "use the piece's own
// orientation".
const DefaultRotation uint8 = 4

// Placed is one element of a finished layout: a piece id plus its rotation
// qualifier.
type Placed struct {
	ID       PieceID `json:"id"`
	Rotation uint8   `json:"rotation"`
}

// Place wraps a piece id with the default rotation qualifier.
func Place(id PieceID) Placed {
	return Placed{ID: id, Rotation: DefaultRotation}
}

// Cell is one tile-column of a piece footprint: an offset from the piece
// anchor plus the quadrants claimed there.
type Cell struct {
	Offset geom.Coord
	Quad   geom.QuadCell
}

// Piece is the footprint of a track element in one fixed orientation. Exit
// is the anchor delta to the next piece.
type Piece struct {
	Cells []Cell
	Exit  geom.Coord
}

// Mirror reflects the piece across the x = 0 plane, swapping handedness.
func (p Piece) Mirror() Piece {
	cells := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = Cell{Offset: c.Offset.Mirror(), Quad: c.Quad.Mirror()}
	}
	return Piece{Cells: cells, Exit: p.Exit.Mirror()}
}

// Rotate turns the piece 90 degrees clockwise about the vertical axis.
func (p Piece) Rotate() Piece {
	cells := make([]Cell, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = Cell{Offset: c.Offset.Rotate(), Quad: c.Quad.Rotate()}
	}
	return Piece{Cells: cells, Exit: p.Exit.Rotate()}
}

func (id PieceID) String() string {
	if name, ok := pieceNames[id]; ok {
		return name
	}
	return fmt.Sprintf("piece(%d)", uint8(id))
}

var pieceNames = map[PieceID]string{
	Flat:                               "flat",
	EndStation:                         "end_station",
	BeginStation:                       "begin_station",
	MiddleStation:                      "middle_station",
	Up25:                               "25_deg_up",
	Up60:                               "60_deg_up",
	FlatToUp25:                         "flat_to_25_deg_up",
	Up25ToUp60:                         "25_deg_up_to_60_deg_up",
	Up60ToUp25:                         "60_deg_up_to_25_deg_up",
	Up25ToFlat:                         "25_deg_up_to_flat",
	Down25:                             "25_deg_down",
	Down60:                             "60_deg_down",
	FlatToDown25:                       "flat_to_25_deg_down",
	Down25ToDown60:                     "25_deg_down_to_60_deg_down",
	Down60ToDown25:                     "60_deg_down_to_25_deg_down",
	Down25ToFlat:                       "25_deg_down_to_flat",
	FlatToLeftBank:                     "flat_to_left_bank",
	FlatToRightBank:                    "flat_to_right_bank",
	LeftBankToFlat:                     "left_bank_to_flat",
	RightBankToFlat:                    "right_bank_to_flat",
	BankedLeftQuarterTurn5Tiles:        "banked_left_quarter_turn_5_tiles",
	BankedRightQuarterTurn5Tiles:       "banked_right_quarter_turn_5_tiles",
	LeftBankToUp25:                     "left_bank_to_25_deg_up",
	RightBankToUp25:                    "right_bank_to_25_deg_up",
	Up25ToLeftBank:                     "25_deg_up_to_left_bank",
	Up25ToRightBank:                    "25_deg_up_to_right_bank",
	LeftBankToDown25:                   "left_bank_to_25_deg_down",
	RightBankToDown25:                  "right_bank_to_25_deg_down",
	Down25ToLeftBank:                   "25_deg_down_to_left_bank",
	Down25ToRightBank:                  "25_deg_down_to_right_bank",
	LeftBank:                           "left_bank",
	RightBank:                          "right_bank",
	LeftVerticalLoop:                   "left_vertical_loop",
	RightVerticalLoop:                  "right_vertical_loop",
	LeftQuarterTurn3Tiles:              "left_quarter_turn_3_tiles",
	RightQuarterTurn3Tiles:             "right_quarter_turn_3_tiles",
	LeftBankedQuarterTurn3Tiles:        "left_quarter_turn_3_tiles_bank",
	RightBankedQuarterTurn3Tiles:       "right_quarter_turn_3_tiles_bank",
	LeftQuarterTurn1TileUp60:           "left_quarter_turn_1_tile_60_deg_up",
	RightQuarterTurn1TileUp60:          "right_quarter_turn_1_tile_60_deg_up",
	LeftQuarterTurn1TileDown60:         "left_quarter_turn_1_tile_60_deg_down",
	RightQuarterTurn1TileDown60:        "right_quarter_turn_1_tile_60_deg_down",
	Up25LeftBanked:                     "25_deg_up_left_banked",
	Up25RightBanked:                    "25_deg_up_right_banked",
	Down25LeftBanked:                   "25_deg_down_left_banked",
	Down25RightBanked:                  "25_deg_down_right_banked",
	LeftBankedQuarterTurn3TileUp25:     "left_banked_quarter_turn_3_tile_25_deg_up",
	RightBankedQuarterTurn3TileUp25:    "right_banked_quarter_turn_3_tile_25_deg_up",
	LeftBankedQuarterTurn3TileDown25:   "left_banked_quarter_turn_3_tile_25_deg_down",
	RightBankedQuarterTurn3TileDown25:  "right_banked_quarter_turn_3_tile_25_deg_down",
	LeftBankedQuarterTurn5TileUp25:     "left_banked_quarter_turn_5_tile_25_deg_up",
	RightBankedQuarterTurn5TileUp25:    "right_banked_quarter_turn_5_tile_25_deg_up",
	LeftBankedQuarterTurn5TileDown25:   "left_banked_quarter_turn_5_tile_25_deg_down",
	RightBankedQuarterTurn5TileDown25:  "right_banked_quarter_turn_5_tile_25_deg_down",
	Up25ToLeftBankedUp25:               "25_deg_up_to_left_banked_25_deg_up",
	Up25ToRightBankedUp25:              "25_deg_up_to_right_banked_25_deg_up",
	LeftBankedUp25ToUp25:               "left_banked_25_deg_up_to_25_deg_up",
	RightBankedUp25ToUp25:              "right_banked_25_deg_up_to_25_deg_up",
	Down25ToLeftBankedDown25:           "25_deg_down_to_left_banked_25_deg_down",
	Down25ToRightBankedDown25:          "25_deg_down_to_right_banked_25_deg_down",
	LeftBankedDown25ToDown25:           "left_banked_25_deg_down_to_25_deg_down",
	RightBankedDown25ToDown25:          "right_banked_25_deg_down_to_25_deg_down",
	LeftBankedFlatToLeftBankedUp25:     "left_banked_flat_to_left_banked_25_deg_up",
	RightBankedFlatToRightBankedUp25:   "right_banked_flat_to_right_banked_25_deg_up",
	LeftBankedUp25ToLeftBankedFlat:     "left_banked_25_deg_up_to_left_banked_flat",
	RightBankedUp25ToRightBankedFlat:   "right_banked_25_deg_up_to_right_banked_flat",
	LeftBankedFlatToLeftBankedDown25:   "left_banked_flat_to_left_banked_25_deg_down",
	RightBankedFlatToRightBankedDown25: "right_banked_flat_to_right_banked_25_deg_down",
	LeftBankedDown25ToLeftBankedFlat:   "left_banked_25_deg_down_to_left_banked_flat",
	RightBankedDown25ToRightBankedFlat: "right_banked_25_deg_down_to_right_banked_flat",
	FlatToLeftBankedUp25:               "flat_to_left_banked_25_deg_up",
	FlatToRightBankedUp25:              "flat_to_right_banked_25_deg_up",
	LeftBankedUp25ToFlat:               "left_banked_25_deg_up_to_flat",
	RightBankedUp25ToFlat:              "right_banked_25_deg_up_to_flat",
	FlatToLeftBankedDown25:             "flat_to_left_banked_25_deg_down",
	FlatToRightBankedDown25:            "flat_to_right_banked_25_deg_down",
	LeftBankedDown25ToFlat:             "left_banked_25_deg_down_to_flat",
	RightBankedDown25ToFlat:            "right_banked_25_deg_down_to_flat",
}
