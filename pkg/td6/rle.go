package td6

import (
	"errors"
	"math/bits"
)

// TD6 files are RLE-compressed with a trailing 4-byte checksum. A control
// byte above 0x7F repeats the following byte 257-b times; otherwise b+1
// literal bytes follow.

// ErrTruncated is returned when an encoded stream ends inside a chunk.
var ErrTruncated = errors.New("td6: truncated stream")

const checksumMagic = 0x1D4C1

// maxRun and maxLiteral are the per-chunk limits the encoder emits. The
// decoder accepts any well-formed chunking.
const (
	maxRun     = 125
	maxLiteral = 126
)

func rleDecode(data []byte) ([]byte, error) {
	var out []byte
	for i := 0; i < len(data); {
		b := data[i]
		i++
		if b > 0x7F {
			if i >= len(data) {
				return nil, ErrTruncated
			}
			count := 257 - int(b)
			for j := 0; j < count; j++ {
				out = append(out, data[i])
			}
			i++
		} else {
			count := int(b) + 1
			if i+count > len(data) {
				return nil, ErrTruncated
			}
			out = append(out, data[i:i+count]...)
			i += count
		}
	}
	return out, nil
}

func rleEncode(data []byte) []byte {
	var out []byte
	i := 0
	for i < len(data) {
		run := runLength(data, i)
		if run >= 3 {
			if run > maxRun {
				run = maxRun
			}
			out = append(out, byte(257-run), data[i])
			i += run
			continue
		}

		// Literal chunk: extend until the next run of three or the chunk
		// limit.
		start := i
		for i < len(data) && i-start < maxLiteral && runLength(data, i) < 3 {
			i++
		}
		out = append(out, byte(i-start-1))
		out = append(out, data[start:i]...)
	}
	return out
}

func runLength(data []byte, i int) int {
	n := 1
	for i+n < len(data) && data[i+n] == data[i] {
		n++
	}
	return n
}

// checksum computes the rotating checksum of an encoded stream, including
// the TD6 magic offset.
func checksum(data []byte) uint32 {
	var ck uint32
	for _, b := range data {
		low := (ck + uint32(b)) & 0xFF
		ck = (ck &^ 0xFF) | low
		ck = bits.RotateLeft32(ck, 3)
	}
	return ck + checksumMagic
}
