// Package leb128 provides convenience wrappers for the most common LEB128
// operations on plain byte slices.
//
// LEB128 stores an unsigned integer in groups of 7 bits, least significant
// group first. Every byte except the last has its high bit set:
//
//	300 = 0b1_0010_1100 -> 0xAC 0x02
//
// # Basic Usage
//
//	dst := leb128.AppendUvarint(nil, 300) // {0xAC, 0x02}
//	v, n := leb128.Uvarint(dst, 0)        // v == 300, n == 2
//
// # Package Structure
//
// The wrappers here use the default strategies for uint64. For positioned
// writes into a reusable buffer, other widths, 128-bit values and strategy
// selection, use the leb128/leb128 package together with leb128/buffer
// directly. The lesqlite package implements an alternate varint format with
// the same calling convention.
package leb128

import (
	"github.com/arloliu/leb128/buffer"
	varint "github.com/arloliu/leb128/leb128"
)

// MaxLen64 is the longest encoding of a uint64.
const MaxLen64 = varint.MaxLen64

var writer buffer.Skewed

// AppendUvarint appends the encoding of v to dst and returns the extended slice.
func AppendUvarint(dst []byte, v uint64) []byte {
	buf := buffer.Wrap(dst)
	varint.EncodeFixed(buf, buf.Len(), v, writer)

	return buf.Bytes()
}

// PutUvarint encodes v into dst at pos, overwriting bytes below len(dst) and
// appending the rest.
//
// Parameters:
//   - dst: Destination slice
//   - pos: Write position (0 <= pos <= len(dst))
//   - v: Value to encode
//
// Returns:
//   - []byte: The updated slice, which may share storage with dst
//   - int: Number of bytes written
//
// Panics if pos is greater than len(dst).
//
// Example:
//
//	dst := []byte{0x00, 0x00, 0x00, 0x7F}
//	dst, n := leb128.PutUvarint(dst, 1, 300) // {0x00, 0xAC, 0x02, 0x7F}, n == 2
func PutUvarint(dst []byte, pos int, v uint64) ([]byte, int) {
	buf := buffer.Wrap(dst)
	n := varint.EncodeFixed(buf, pos, v, writer)

	return buf.Bytes(), n
}

// Uvarint decodes the value starting at data[pos] and returns it with the
// number of bytes consumed.
//
// Panics if the encoding is truncated or longer than MaxLen64 bytes.
func Uvarint(data []byte, pos int) (uint64, int) {
	return varint.DecodeFixed[uint64](data, pos)
}

// Size returns the length of the encoding of v.
func Size(v uint64) int {
	return varint.Size(v)
}
