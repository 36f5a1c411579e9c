// Package buffer provides the caller-owned byte buffer that every leb128 encoder
// writes into, together with the positioned writers that place bytes in it.
//
// # Positioned Writes
//
// A positioned write places a byte sequence at an absolute offset. Bytes landing
// below the buffer's current length overwrite existing data; the remainder is
// appended. Writing at Len() is therefore a pure append, and writing past Len()
// is a programming error that panics.
//
// Three Writer strategies implement the same contract:
//
//   - ByteWise: one byte per step, branching on overwrite vs append each time
//   - SplitCopy: one copy for the overlapping prefix and one append for the rest
//   - Skewed: a single append when pos == Len(), SplitCopy out of line otherwise
//
// Pick one by value or through NewWriter:
//
//	w, _ := buffer.NewWriter(format.WriterSkewed)
//	buf := buffer.NewDefault()
//	w.Put(buf, 0, []byte{0xAC, 0x02})
//	w.Put(buf, 0, []byte{0xAD})      // overwrite the first byte
//	w.Put(buf, buf.Len(), []byte{1}) // append
//
// # Reserved Windows
//
// Reserve moves the capacity check ahead of the writes: it grows the buffer so
// that n bytes from pos are backed by memory and returns a Window over exactly
// that region. Writes through the Window are plain slice stores, and Commit
// publishes the new length in one step:
//
//	win := buf.Reserve(pos, 10)
//	dst := win.Bytes()
//	dst[0] = 0x7F
//	win.Commit(1)
//
// # Thread Safety
//
// Buffers are not safe for concurrent use. Writers are stateless values and can
// be shared freely.
package buffer
