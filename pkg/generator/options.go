package generator

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/balidani/coaster-generator/pkg/geom"
	"github.com/balidani/coaster-generator/pkg/grid"
	"github.com/balidani/coaster-generator/pkg/track"
)

// Options tunes a Generator. The zero value is not useful; start from
// DefaultOptions (or LoadOptions) and override fields.
type Options struct {
	// Seed for the random tie-break. 0 means seed from wall-clock time.
	Seed int64 `yaml:"seed"`

	// MinTrackLength is the piece count a circuit must exceed to count as
	// a success.
	MinTrackLength int `yaml:"min_track_length"`

	// StepsPerAttempt bounds the backtrack steps of one attempt.
	StepsPerAttempt int `yaml:"steps_per_attempt"`

	// MaxAttempts bounds the number of attempts. 0 retries forever.
	MaxAttempts int `yaml:"max_attempts"`

	// HeightLimitFactor shrinks the allowed elevation as the circuit grows:
	// once a sequence is longer than ten pieces, a piece may not exit above
	// z = SizeZ - factor*length.
	HeightLimitFactor float64 `yaml:"height_limit_factor"`

	// LoopBias makes the search try vertical loops before any random pick.
	LoopBias bool `yaml:"loop_bias"`

	Dims grid.Dims `yaml:"dims"`

	Start           geom.Coord      `yaml:"-"`
	StartHeading    geom.Heading    `yaml:"-"`
	Terminal        geom.Coord      `yaml:"-"`
	TerminalHeading geom.Heading    `yaml:"-"`
	Reserved        []geom.Coord    `yaml:"-"`
	Prologue        []track.PieceID `yaml:"-"`

	// Catalog and Tables default to the standard ones when nil.
	Catalog *track.Catalog `yaml:"-"`
	Tables  *track.Tables  `yaml:"-"`

	// Logger receives per-attempt progress lines. Nil disables logging.
	Logger *log.Logger `yaml:"-"`
}

// DefaultOptions returns the production configuration: the fixed station
// pose, the reserved approach tiles, and the station-plus-climbing-turn
// prologue.
func DefaultOptions() Options {
	return Options{
		Seed:              0,
		MinTrackLength:    100,
		StepsPerAttempt:   64000,
		MaxAttempts:       0,
		HeightLimitFactor: 0.05,
		LoopBias:          true,
		Dims:              grid.DefaultDims,
		Start:             geom.Coord{Y: 0, X: 4, Z: 0},
		StartHeading:      geom.East,
		Terminal:          geom.Coord{Y: 0, X: 3, Z: 0},
		TerminalHeading:   geom.East,
		Reserved: []geom.Coord{
			{Y: 0, X: 3, Z: 0},
			{Y: 0, X: 3, Z: 1},
		},
		Prologue: []track.PieceID{
			track.BeginStation,
			track.MiddleStation,
			track.MiddleStation,
			track.EndStation,
			track.FlatToLeftBankedUp25,
			track.LeftBankedQuarterTurn5TileUp25,
			track.LeftBankedQuarterTurn5TileUp25,
		},
	}
}

// LoadOptions overlays a YAML tuning file onto the defaults. Fields absent
// from the file keep their default values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing options YAML: %w", err)
	}
	return opts, nil
}
