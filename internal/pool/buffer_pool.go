package pool

import (
	"sync"

	"github.com/arloliu/leb128/buffer"
)

const (
	StreamBufferDefaultSize  = 1024 * 64       // 64KiB
	StreamBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// BufferPool is a pool of buffer.Buffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a new BufferPool with buffers of the specified default size.
// A maxThreshold of zero keeps buffers of any size.
func NewBufferPool(defaultSize int, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return buffer.New(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty Buffer from the pool.
func (bp *BufferPool) Get() *buffer.Buffer {
	bb, _ := bp.pool.Get().(*buffer.Buffer)
	return bb
}

// Put returns a Buffer to the pool for reuse.
func (bp *BufferPool) Put(bb *buffer.Buffer) {
	if bb == nil {
		return
	}

	if bp.maxThreshold > 0 && bb.Cap() > bp.maxThreshold {
		return
	}

	bb.Reset()
	bp.pool.Put(bb)
}

var streamDefaultPool = NewBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)

// GetStreamBuffer retrieves a Buffer from the default stream pool.
func GetStreamBuffer() *buffer.Buffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a Buffer to the default stream pool.
func PutStreamBuffer(bb *buffer.Buffer) {
	streamDefaultPool.Put(bb)
}
