// Package pool recycles the byte buffers column encoders build their payloads in.
package pool

import (
	"io"
	"sync"
)

const (
	ColumnBufferDefaultSize  = 1024 * 4   // 4KiB, one code per value
	ColumnBufferMaxThreshold = 1024 * 256 // 256KiB
	SetBufferDefaultSize     = 1024 * 64  // 64KiB
	SetBufferMaxThreshold    = 1024 * 1024 * 4
)

// ByteBuffer is an append-only byte slice that can be returned to a pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a buffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// WriteByte appends a single byte. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Write appends data, growing the buffer as needed. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// Grow ensures room for n more bytes without reallocation.
//
// Small buffers grow by ColumnBufferDefaultSize, larger ones by a quarter of
// their capacity, and always by at least n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := ColumnBufferDefaultSize
	if cap(bb.B) > 4*ColumnBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers that drops buffers grown past
// maxThreshold instead of retaining them.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given initial size.
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

// Get retrieves an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a buffer to the pool. The caller must not use it afterwards.
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

var (
	columnPool = NewByteBufferPool(ColumnBufferDefaultSize, ColumnBufferMaxThreshold)
	setPool    = NewByteBufferPool(SetBufferDefaultSize, SetBufferMaxThreshold)
)

// GetColumnBuffer retrieves a buffer sized for a single column payload.
func GetColumnBuffer() *ByteBuffer {
	return columnPool.Get()
}

// PutColumnBuffer returns a column buffer to its pool.
func PutColumnBuffer(bb *ByteBuffer) {
	columnPool.Put(bb)
}

// GetSetBuffer retrieves a buffer sized for a column set.
func GetSetBuffer() *ByteBuffer {
	return setPool.Get()
}

// PutSetBuffer returns a column set buffer to its pool.
func PutSetBuffer(bb *ByteBuffer) {
	setPool.Put(bb)
}
