package td6

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balidani/coaster-generator/pkg/track"
)

func TestRLERoundTrip(t *testing.T) {
	cases := map[string][]byte{
		"empty":        {},
		"single":       {42},
		"literal only": {1, 2, 3, 4, 5},
		"short run":    {7, 7, 7},
		"mixed":        {1, 2, 2, 2, 2, 3, 4, 4, 5, 5, 5, 5, 5, 6},
		"long run":     bytes.Repeat([]byte{0xAB}, 300),
		"long literal": func() []byte {
			out := make([]byte, 200)
			for i := range out {
				out[i] = byte(i)
			}
			return out
		}(),
	}
	for name, data := range cases {
		decoded, err := rleDecode(rleEncode(data))
		require.NoError(t, err, name)
		assert.Equal(t, data, decoded, name)
	}
}

func TestRLEEncodeChunks(t *testing.T) {
	// No run of three: one literal chunk, length byte is count-1.
	assert.Equal(t, []byte{2, 1, 2, 3}, rleEncode([]byte{1, 2, 3}))

	// A run of five encodes as 257-5 followed by the byte.
	assert.Equal(t, []byte{252, 7}, rleEncode([]byte{7, 7, 7, 7, 7}))

	// Runs longer than 125 are split.
	encoded := rleEncode(bytes.Repeat([]byte{9}, 130))
	assert.Equal(t, []byte{257 - 125, 9, 257 - 5, 9}, encoded)
}

func TestRLEDecodeTruncated(t *testing.T) {
	// Repeat control byte with no byte to repeat.
	_, err := rleDecode([]byte{0x80})
	assert.ErrorIs(t, err, ErrTruncated)

	// Literal chunk announcing more bytes than remain.
	_, err = rleDecode([]byte{5, 1, 2})
	assert.ErrorIs(t, err, ErrTruncated)
}

func testDesign() *Design {
	d := &Design{
		Tracks: []track.Placed{
			{ID: track.BeginStation, Rotation: track.DefaultRotation},
			{ID: track.MiddleStation, Rotation: track.DefaultRotation},
			{ID: track.EndStation, Rotation: track.DefaultRotation},
			{ID: track.Flat, Rotation: track.DefaultRotation},
		},
		Entrances: []Entrance{
			{Z: 4, Direction: 1, X: 32, Y: -64},
			{Z: -2, Direction: 3, X: -96, Y: 160},
		},
		Trailer: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xFF},
	}
	for i := range d.Header {
		d.Header[i] = byte(i % 251)
	}
	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	d := testDesign()

	got, err := Decode(Encode(d))
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDecodeRejectsCorruption(t *testing.T) {
	data := Encode(testDesign())

	data[headerSize/2] ^= 0x01
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestDecodeRejectsShortFile(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShort)
}

func TestParseRejectsShortPayload(t *testing.T) {
	_, err := parse(make([]byte, headerSize-1))
	assert.ErrorIs(t, err, ErrShort)
}

func TestParseRejectsMissingTerminators(t *testing.T) {
	// Header with no track terminator at all.
	_, err := parse(make([]byte, headerSize))
	assert.Error(t, err)

	// Terminated track list but an entrance record cut off mid-way.
	raw := make([]byte, headerSize)
	raw = append(raw, terminator) // empty track list
	raw = append(raw, 4, 1, 0)    // half an entrance record
	_, err = parse(raw)
	assert.Error(t, err)
}

func TestEmptyListsRoundTrip(t *testing.T) {
	d := &Design{}

	got, err := Decode(Encode(d))
	require.NoError(t, err)
	assert.Empty(t, got.Tracks)
	assert.Empty(t, got.Entrances)
	assert.Empty(t, got.Trailer)
}

func TestSaveLoad(t *testing.T) {
	path := t.TempDir() + "/design.td6"
	d := testDesign()

	require.NoError(t, Save(path, d))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}
