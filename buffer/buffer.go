package buffer

import "fmt"

// DefaultSize is the initial capacity used by NewDefault and the minimum growth step.
const DefaultSize = 1024

// Buffer is a growable byte buffer addressed by absolute write positions.
//
// A Buffer is owned by its caller. Encoders write into it at a given position
// and never keep a reference to it once they return. The logical length of B
// marks the end of written data; bytes between len(B) and cap(B) are spare
// capacity and are only ever exposed through Reserve.
type Buffer struct {
	// B is the underlying byte slice.
	B []byte
}

// New creates a new Buffer with the specified initial capacity.
func New(capacity int) *Buffer {
	return &Buffer{
		B: make([]byte, 0, capacity),
	}
}

// NewDefault creates a new Buffer with DefaultSize capacity.
func NewDefault() *Buffer {
	return New(DefaultSize)
}

// Wrap returns a Buffer whose contents are b. The Buffer takes ownership of b.
func Wrap(b []byte) *Buffer {
	return &Buffer{B: b}
}

// Bytes returns the underlying byte slice.
func (bb *Buffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *Buffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *Buffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *Buffer) Cap() int {
	return cap(bb.B)
}

// Slice returns B[start:end]. end may reach past Len() into spare capacity,
// which is how Reserve carves out its window.
// Panics if the indices are out of bounds.
func (bb *Buffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("buffer: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n, publishing bytes already
// stored in spare capacity. Window.Commit uses it.
// Panics if n is negative or greater than the capacity.
func (bb *Buffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("buffer: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient capacity.
func (bb *Buffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, growing it if necessary.
// The new bytes are left for the caller to fill; the SplitCopy writer
// appends its tail this way.
func (bb *Buffer) ExtendOrGrow(n int) {
	if bb.Extend(n) {
		return
	}

	start := len(bb.B)
	bb.Grow(n)
	bb.B = bb.B[:start+n]
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (<4*DefaultSize), grow by DefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *Buffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultSize
	if cap(bb.B) > 4*DefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Reserve guarantees that n bytes starting at pos are backed by capacity and
// returns a Window over them.
//
// The window is the only way to write past the logical length of the buffer:
// the capacity check happens here, once, so that writes through the window
// need no further growth checks. The buffer length is not changed until
// Window.Commit is called.
//
// Panics if pos is negative or greater than the current length.
//
// Parameters:
//   - pos: Start position of the window (0 <= pos <= Len())
//   - n: Number of bytes the caller may write
//
// Returns:
//   - Window: Exclusive handle over B[pos:pos+n]
func (bb *Buffer) Reserve(pos, n int) Window {
	mustPosition(bb, pos)

	if need := pos + n - len(bb.B); need > 0 {
		bb.Grow(need)
	}

	b := bb.Slice(pos, pos+n)

	return Window{buf: bb, start: pos, b: b[:n:n]}
}

// mustPosition panics when pos is outside [0, len(bb.B)].
func mustPosition(bb *Buffer, pos int) {
	if pos < 0 || pos > len(bb.B) {
		panic(fmt.Sprintf("buffer: write position %d outside [0, %d]", pos, len(bb.B)))
	}
}
