package leb128

import (
	"golang.org/x/exp/constraints"

	"github.com/arloliu/leb128/buffer"
)

const (
	payloadMask  = 0x7F
	continuation = 0x80
)

// EncodeReference encodes v at pos with an unbounded loop, writing each byte
// with its own overwrite-or-append step.
//
// The loop stops as soon as the remaining value is zero, so it never writes
// more than MaxLen[T]() bytes.
//
// Parameters:
//   - buf: Destination buffer
//   - pos: Write position (0 <= pos <= buf.Len())
//   - v: Value to encode
//
// Returns:
//   - int: Number of bytes written
func EncodeReference[T constraints.Unsigned](buf *buffer.Buffer, pos int, v T) int {
	var sink buffer.ByteWise

	start := pos
	for {
		b := byte(v) & payloadMask
		v >>= 7

		if v == 0 {
			sink.PutByte(buf, pos, b)
			return pos + 1 - start
		}

		sink.PutByte(buf, pos, b|continuation)
		pos++
	}
}

// EncodeFixed encodes v into a scratch array bounded by MaxLen[T]() and
// flushes it with a single w.Put call once the length is known.
//
// No buffer interaction happens inside the loop; the only write is the final
// bulk flush, whose cost depends on the Writer strategy.
//
// Parameters:
//   - buf: Destination buffer
//   - pos: Write position (0 <= pos <= buf.Len())
//   - v: Value to encode
//   - w: Positioned writer used for the flush
//
// Returns:
//   - int: Number of bytes written
func EncodeFixed[T constraints.Unsigned](buf *buffer.Buffer, pos int, v T, w buffer.Writer) int {
	var encoded [MaxLen128]byte

	limit := MaxLen[T]()
	for i := 0; i < limit; i++ {
		encoded[i] = byte(v) & payloadMask
		v >>= 7

		if v == 0 {
			n := i + 1
			flush(w, buf, pos, encoded[:n])

			return n
		}

		encoded[i] |= continuation
	}

	panic("leb128: value exceeds width bound")
}

// EncodeCallback runs the bounded encoding loop and hands every byte to emit,
// least significant group first.
//
// The bit-shifting core is shared by every width and every sink: callers
// decide where bytes go.
//
// Returns:
//   - int: Number of bytes emitted
func EncodeCallback[T constraints.Unsigned](v T, emit func(b byte)) int {
	limit := MaxLen[T]()
	for n := 1; n <= limit; n++ {
		b := byte(v) & payloadMask
		v >>= 7

		if v == 0 {
			emit(b)
			return n
		}

		emit(b | continuation)
	}

	panic("leb128: value exceeds width bound")
}

// EncodeWithSink encodes v at pos by feeding EncodeCallback into w.PutByte at
// increasing positions.
func EncodeWithSink[T constraints.Unsigned](buf *buffer.Buffer, pos int, v T, w buffer.Writer) int {
	return EncodeCallback(v, func(b byte) {
		w.PutByte(buf, pos, b)
		pos++
	})
}

// EncodeReserved reserves MaxLen[T]() bytes at pos, writes the encoding
// straight into the reserved window and commits the written length.
//
// The reservation is the only capacity check: the loop stores into a slice
// whose length already covers the worst case. The buffer length becomes
// pos+n only if that exceeds the current length.
//
// Parameters:
//   - buf: Destination buffer
//   - pos: Write position (0 <= pos <= buf.Len())
//   - v: Value to encode
//
// Returns:
//   - int: Number of bytes written
func EncodeReserved[T constraints.Unsigned](buf *buffer.Buffer, pos int, v T) int {
	win := buf.Reserve(pos, MaxLen[T]())
	dst := win.Bytes()

	n := 0
	for {
		b := byte(v) & payloadMask
		v >>= 7

		if v == 0 {
			dst[n] = b
			n++

			break
		}

		dst[n] = b | continuation
		n++
	}

	win.Commit(n)

	return n
}

// flush writes data through w, calling the built-in writers directly so the
// caller's scratch array does not escape through an interface call.
func flush(w buffer.Writer, buf *buffer.Buffer, pos int, data []byte) {
	switch sw := w.(type) {
	case buffer.Skewed:
		sw.Put(buf, pos, data)
	case buffer.SplitCopy:
		sw.Put(buf, pos, data)
	case buffer.ByteWise:
		sw.Put(buf, pos, data)
	default:
		w.Put(buf, pos, data)
	}
}
