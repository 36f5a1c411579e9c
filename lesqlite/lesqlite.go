// Package lesqlite implements a variable-length integer codec that chooses its
// length from value ranges instead of continuation bits.
//
// The first byte alone tells the decoder how long the encoding is:
//
//	first byte      length   value
//	0..184          1        the byte itself
//	185..248        2        185 + 256*(b0-185) + b1
//	249..255        3..9     little-endian payload of b0-247 bytes
//
// The scheme is not LEB128 and cannot be read by the leb128 decoders. Values
// are limited to 64 bits: the largest tag already describes an eight-byte
// payload.
package lesqlite

import (
	"math/bits"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/endian"
)

const (
	// C1 is the first value that no longer fits in a single byte.
	C1 = 185
	// C2 is the first tag byte of the length-prefixed form.
	C2 = 249

	// MaxTwoByte is the largest value encoded in two bytes.
	MaxTwoByte = C1 + 255 + 256*(C2-1-C1)

	// MaxLen is the longest encoding: one tag byte and eight payload bytes.
	MaxLen = 9
)

var engine = endian.GetLittleEndianEngine()

// Size returns the number of bytes Encode writes for v.
func Size(v uint64) int {
	switch {
	case v < C1:
		return 1
	case v <= MaxTwoByte:
		return 2
	default:
		return 1 + payloadLen(v)
	}
}

// Encode writes v at pos through w and returns the number of bytes written.
//
// Parameters:
//   - buf: Destination buffer
//   - pos: Write position (0 <= pos <= buf.Len())
//   - v: Value to encode
//   - w: Positioned writer
//
// Returns:
//   - int: Number of bytes written, always Size(v)
func Encode(buf *buffer.Buffer, pos int, v uint64, w buffer.Writer) int {
	if v < C1 {
		w.PutByte(buf, pos, byte(v))
		return 1
	}

	var encoded [MaxLen]byte

	if v <= MaxTwoByte {
		d := v - C1
		encoded[0] = byte(C1 + d/256)
		encoded[1] = byte(d % 256)
		w.Put(buf, pos, encoded[:2])

		return 2
	}

	n := payloadLen(v)
	encoded[0] = byte(C2 + n - 2)
	endian.PutSized(engine, encoded[1:], v, 8)
	w.Put(buf, pos, encoded[:1+n])

	return 1 + n
}

// Decode reads the value starting at pos and returns it with the number of
// bytes consumed.
//
// Panics when the encoding runs past the end of data.
func Decode(data []byte, pos int) (uint64, int) {
	b0 := data[pos]

	switch {
	case b0 < C1:
		return uint64(b0), 1
	case b0 < C2:
		return C1 + 256*uint64(b0-C1) + uint64(data[pos+1]), 2
	default:
		n := int(b0-C2) + 2

		var payload [8]byte
		copy(payload[:], data[pos+1:pos+1+n])

		return endian.Sized(engine, payload[:], 8), 1 + n
	}
}

// payloadLen returns the minimal byte count holding v, never less than two.
func payloadLen(v uint64) int {
	n := (bits.Len64(v) + 7) / 8
	if n < 2 {
		return 2
	}

	return n
}
