package pool

import (
	"io"
	"sync"
)

const (
	// TermBufferDefaultSize is the initial capacity of a pooled encode buffer.
	TermBufferDefaultSize = 1024 * 4 // 4KiB
	// TermBufferMaxThreshold is the largest capacity a buffer may have and
	// still be returned to the pool.
	TermBufferMaxThreshold = 1024 * 256 // 256KiB
)

// ByteBuffer is an append-only scratch buffer used while encoding a term.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can hold n more bytes without reallocating.
//
// Small buffers grow by TermBufferDefaultSize, larger ones by 25% of their
// capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := TermBufferDefaultSize
	if cap(bb.B) > 4*TermBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteString appends s to the buffer without converting it to a byte slice.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// MustWriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) MustWriteByte(c byte) {
	bb.B = append(bb.B, c)
}

// Clone returns a copy of the buffer contents that does not alias the pool.
func (bb *ByteBuffer) Clone() []byte {
	out := make([]byte, len(bb.B))
	copy(out, bb.B)

	return out
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put so a
// single large term does not pin memory for the lifetime of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
// A maxThreshold of zero retains buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var termDefaultPool = NewByteBufferPool(TermBufferDefaultSize, TermBufferMaxThreshold)

// GetTermBuffer retrieves a ByteBuffer from the default term pool.
func GetTermBuffer() *ByteBuffer {
	return termDefaultPool.Get()
}

// PutTermBuffer returns a ByteBuffer to the default term pool.
func PutTermBuffer(bb *ByteBuffer) {
	termDefaultPool.Put(bb)
}
