package buffer

// Window is an exclusive, bounds-known view over reserved buffer capacity.
//
// A Window is obtained from Buffer.Reserve. Writing through Bytes never
// changes the buffer length; Commit publishes the written prefix.
// A Window must not be used after any other write to its Buffer, since that
// write may reallocate the backing array.
type Window struct {
	buf   *Buffer
	start int
	b     []byte
}

// Bytes returns the reserved region. Its length equals the reserved size.
func (w Window) Bytes() []byte {
	return w.b
}

// Start returns the buffer position the window begins at.
func (w Window) Start() int {
	return w.start
}

// Commit marks the first n bytes of the window as written.
//
// The buffer length becomes start+n if that exceeds the current length;
// committing inside already written data leaves the length unchanged.
//
// Panics if n is negative or larger than the reserved size.
func (w Window) Commit(n int) {
	if n < 0 || n > len(w.b) {
		panic("buffer: Commit: count exceeds reservation")
	}

	if end := w.start + n; end > w.buf.Len() {
		w.buf.SetLength(end)
	}
}
