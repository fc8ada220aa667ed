// Package td6 reads and writes RCT2 TD6 track-design files. Only the track
// and entrance element lists are interpreted; the fixed header and the
// scenery data after the element lists are carried through untouched.
package td6

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/balidani/coaster-generator/pkg/track"
)

// headerSize is the fixed TD6 header preceding the element lists.
const headerSize = 0xA3

const terminator = 0xFF

var (
	// ErrChecksum is returned when the trailing checksum does not match.
	ErrChecksum = errors.New("td6: checksum mismatch")

	// ErrShort is returned when a file is too small to hold a design.
	ErrShort = errors.New("td6: file too short")
)

// Entrance is one entrance or exit element of a design.
type Entrance struct {
	Z         int8   `json:"z"`
	Direction uint8  `json:"direction"`
	X         int16  `json:"x"`
	Y         int16  `json:"y"`
}

// Design is a decoded track design. Header and Trailer are opaque: a design
// loaded from a template keeps its ride settings and scenery even after the
// track list is replaced.
type Design struct {
	Header    [headerSize]byte
	Tracks    []track.Placed
	Entrances []Entrance
	Trailer   []byte
}

// Load reads and decodes a TD6 file, verifying its checksum.
func Load(path string) (*Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design file: %w", err)
	}
	return Decode(data)
}

// Save encodes a design and writes it to path.
func Save(path string, d *Design) error {
	data := Encode(d)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing design file: %w", err)
	}
	return nil
}

// Decode parses a raw TD6 file: checksum check, RLE decode, element lists.
func Decode(data []byte) (*Design, error) {
	if len(data) < 4 {
		return nil, ErrShort
	}
	encoded, stored := data[:len(data)-4], data[len(data)-4:]
	if checksum(encoded) != binary.LittleEndian.Uint32(stored) {
		return nil, ErrChecksum
	}

	raw, err := rleDecode(encoded)
	if err != nil {
		return nil, err
	}
	return parse(raw)
}

// Encode serializes a design back to the on-disk format.
func Encode(d *Design) []byte {
	raw := serialize(d)
	encoded := rleEncode(raw)
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], checksum(encoded))
	return append(encoded, trailer[:]...)
}

func parse(raw []byte) (*Design, error) {
	if len(raw) < headerSize {
		return nil, ErrShort
	}
	d := &Design{}
	copy(d.Header[:], raw[:headerSize])
	i := headerSize

	// Track elements: (type, qualifier) pairs.
	for {
		if i >= len(raw) {
			return nil, fmt.Errorf("td6: unterminated track element list")
		}
		if raw[i] == terminator {
			i++
			break
		}
		if i+2 > len(raw) {
			return nil, fmt.Errorf("td6: truncated track element")
		}
		d.Tracks = append(d.Tracks, track.Placed{
			ID:       track.PieceID(raw[i]),
			Rotation: raw[i+1],
		})
		i += 2
	}

	// Entrance elements: 6-byte records.
	for {
		if i >= len(raw) {
			return nil, fmt.Errorf("td6: unterminated entrance element list")
		}
		if raw[i] == terminator {
			i++
			break
		}
		if i+6 > len(raw) {
			return nil, fmt.Errorf("td6: truncated entrance element")
		}
		d.Entrances = append(d.Entrances, Entrance{
			Z:         int8(raw[i]),
			Direction: raw[i+1],
			X:         int16(binary.LittleEndian.Uint16(raw[i+2 : i+4])),
			Y:         int16(binary.LittleEndian.Uint16(raw[i+4 : i+6])),
		})
		i += 6
	}

	d.Trailer = append([]byte(nil), raw[i:]...)
	return d, nil
}

func serialize(d *Design) []byte {
	raw := make([]byte, 0, headerSize+len(d.Tracks)*2+len(d.Entrances)*6+len(d.Trailer)+2)
	raw = append(raw, d.Header[:]...)

	for _, t := range d.Tracks {
		raw = append(raw, byte(t.ID), t.Rotation)
	}
	raw = append(raw, terminator)

	for _, e := range d.Entrances {
		var rec [6]byte
		rec[0] = byte(e.Z)
		rec[1] = e.Direction
		binary.LittleEndian.PutUint16(rec[2:4], uint16(e.X))
		binary.LittleEndian.PutUint16(rec[4:6], uint16(e.Y))
		raw = append(raw, rec[:]...)
	}
	raw = append(raw, terminator)

	raw = append(raw, d.Trailer...)
	return raw
}
