package buffer

import (
	"errors"
	"fmt"

	"github.com/arloliu/leb128/format"
)

// ErrInvalidWriterStrategy is returned when a writer strategy is not recognised.
var ErrInvalidWriterStrategy = errors.New("invalid writer strategy")

// Writer writes bytes at an absolute position of a Buffer.
//
// Bytes that land below the buffer's current length overwrite what is there;
// the remainder is appended. The result never contains gaps: a position
// greater than Len() is a contract violation and panics.
//
// All implementations produce identical buffer contents. They differ only in
// how many branches and copies they spend per call.
type Writer interface {
	// Put writes data starting at pos.
	Put(buf *Buffer, pos int, data []byte)

	// PutByte writes a single byte at pos.
	PutByte(buf *Buffer, pos int, b byte)
}

// ByteWise writes one byte per step, deciding on every byte whether it
// overwrites or appends.
type ByteWise struct{}

// SplitCopy copies the part of the input that overlaps written data in one
// copy and appends the rest in one append.
type SplitCopy struct{}

// Skewed appends directly when writing at the end of the buffer, which is the
// case for sequential encoding into a fresh buffer, and falls back to
// SplitCopy otherwise.
type Skewed struct{}

var (
	_ Writer = ByteWise{}
	_ Writer = SplitCopy{}
	_ Writer = Skewed{}
)

// NewWriter returns the Writer implementing the given strategy.
//
// Parameters:
//   - strategy: One of format.WriterByteWise, format.WriterSplitCopy, format.WriterSkewed
//
// Returns:
//   - Writer: Stateless writer for the strategy
//   - error: ErrInvalidWriterStrategy for unknown strategies
func NewWriter(strategy format.WriterStrategy) (Writer, error) {
	switch strategy {
	case format.WriterByteWise:
		return ByteWise{}, nil
	case format.WriterSplitCopy:
		return SplitCopy{}, nil
	case format.WriterSkewed:
		return Skewed{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidWriterStrategy, strategy)
	}
}

// MustWriter is like NewWriter but panics on unknown strategies.
func MustWriter(strategy format.WriterStrategy) Writer {
	w, err := NewWriter(strategy)
	if err != nil {
		panic(err)
	}

	return w
}

// Put writes data one byte at a time.
func (ByteWise) Put(buf *Buffer, pos int, data []byte) {
	mustPosition(buf, pos)

	for _, b := range data {
		if pos == len(buf.B) {
			buf.B = append(buf.B, b)
		} else {
			buf.B[pos] = b
		}
		pos++
	}
}

// PutByte overwrites the byte at pos, or appends it when pos == Len().
func (ByteWise) PutByte(buf *Buffer, pos int, b byte) {
	if pos == len(buf.B) {
		buf.B = append(buf.B, b)
		return
	}

	mustPosition(buf, pos)
	buf.B[pos] = b
}

// Put copies the overlapping prefix, then appends the remainder.
func (SplitCopy) Put(buf *Buffer, pos int, data []byte) {
	putSplit(buf, pos, data)
}

// PutByte overwrites the byte at pos, or appends it when pos == Len().
func (SplitCopy) PutByte(buf *Buffer, pos int, b byte) {
	ByteWise{}.PutByte(buf, pos, b)
}

// Put appends when pos == Len() and otherwise takes the out-of-line split path.
func (Skewed) Put(buf *Buffer, pos int, data []byte) {
	if pos == len(buf.B) {
		buf.B = append(buf.B, data...)
		return
	}

	putSplitCold(buf, pos, data)
}

// PutByte appends when pos == Len() and otherwise overwrites out of line.
func (Skewed) PutByte(buf *Buffer, pos int, b byte) {
	if pos == len(buf.B) {
		buf.B = append(buf.B, b)
		return
	}

	putByteCold(buf, pos, b)
}

func putSplit(buf *Buffer, pos int, data []byte) {
	mustPosition(buf, pos)

	existing := len(buf.B) - pos
	head := min(existing, len(data))

	if head > 0 {
		copy(buf.B[pos:], data[:head])
	}

	if tail := len(data) - head; tail > 0 {
		end := len(buf.B)
		buf.ExtendOrGrow(tail)
		copy(buf.B[end:], data[head:])
	}
}

//go:noinline
func putSplitCold(buf *Buffer, pos int, data []byte) {
	putSplit(buf, pos, data)
}

//go:noinline
func putByteCold(buf *Buffer, pos int, b byte) {
	mustPosition(buf, pos)
	buf.B[pos] = b
}
