package ndarray

import (
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted byte buffer shared between an array and any
// views derived from it. No view can outlive the storage: the bytes are
// dropped only when the last holder releases its reference.
type buffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // guards deallocation
}

// newBuffer creates a buffer with refCount = 1.
func newBuffer(size int) *buffer {
	buf := &buffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (view creation).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the storage at zero.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if exactly one array references this buffer.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}
