// Package raw writes fixed-width integers into a buffer.Buffer at a given
// position. It is the uncompressed baseline that LEB128 sizes are measured
// against: every value takes exactly sizeof(T) bytes.
//
// Two approaches are provided. Put stages the value in a scratch array in the
// engine's byte order and hands it to a buffer.Writer in one call. PutShifted
// extracts each byte with a shift and writes it with a single-byte
// overwrite-or-append, always little-endian.
package raw

import (
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"

	"github.com/arloliu/leb128/buffer"
	"github.com/arloliu/leb128/endian"
)

// Uint128Size is the encoded size of a 128-bit value.
const Uint128Size = 16

// Writer writes fixed-width integers through a positioned buffer writer.
//
// A Writer is immutable after construction and safe to share.
type Writer struct {
	engine endian.EndianEngine
	sink   buffer.Writer
	little bool
}

// NewWriter creates a fixed-width writer.
//
// Parameters:
//   - engine: Byte order of written values (little-endian is canonical)
//   - sink: Positioned writer strategy used for every write
//
// Returns:
//   - *Writer: A new writer
func NewWriter(engine endian.EndianEngine, sink buffer.Writer) *Writer {
	return &Writer{
		engine: engine,
		sink:   sink,
		little: engine.Uint16([]byte{0x01, 0x00}) == 0x0001,
	}
}

// NewLittleEndianWriter creates a writer in the canonical little-endian order.
func NewLittleEndianWriter(sink buffer.Writer) *Writer {
	return NewWriter(endian.GetLittleEndianEngine(), sink)
}

// Engine returns the byte order of the writer.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Size returns sizeof(T) in bytes.
func Size[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Put writes v at pos in the writer's byte order and returns sizeof(T).
//
// Signed values are written as their two's-complement bit pattern.
// Panics if pos is greater than buf.Len().
func Put[T constraints.Integer](w *Writer, buf *buffer.Buffer, pos int, v T) int {
	size := int(unsafe.Sizeof(v))

	var tmp [8]byte
	endian.PutSized(w.engine, tmp[:], uint64(v), size) //nolint:gosec
	w.sink.Put(buf, pos, tmp[:size])

	return size
}

// PutUint128 writes a 128-bit value at pos and returns 16.
//
// Signed 128-bit values are written by passing their two's-complement bits.
func (w *Writer) PutUint128(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
	var tmp [Uint128Size]byte

	if w.little {
		w.engine.PutUint64(tmp[:8], v.Lo)
		w.engine.PutUint64(tmp[8:], v.Hi)
	} else {
		w.engine.PutUint64(tmp[:8], v.Hi)
		w.engine.PutUint64(tmp[8:], v.Lo)
	}
	w.sink.Put(buf, pos, tmp[:])

	return Uint128Size
}

// PutShifted writes v little-endian one byte at a time, each byte taken as
// (v >> 8*i) & 0xFF and written with an overwrite-or-append step.
func PutShifted[T constraints.Integer](buf *buffer.Buffer, pos int, v T) int {
	size := int(unsafe.Sizeof(v))
	u := uint64(v) //nolint:gosec

	var sink buffer.ByteWise
	for i := 0; i < size; i++ {
		sink.PutByte(buf, pos+i, byte(u>>(8*i)))
	}

	return size
}

// PutShiftedUint128 is PutShifted for 128-bit values.
func PutShiftedUint128(buf *buffer.Buffer, pos int, v uint128.Uint128) int {
	var sink buffer.ByteWise
	for i := 0; i < Uint128Size; i++ {
		sink.PutByte(buf, pos+i, byte(v.Rsh(uint(8*i)).Lo))
	}

	return Uint128Size
}
