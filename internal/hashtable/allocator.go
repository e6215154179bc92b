// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

import (
	bytesbufferpool "github.com/datnguyenzzz/nogodb/lib/go-bytesbufferpool"
)

// Allocator is the capability backing table memory. Value buffers are
// obtained from Get and, once displaced, returned through Put — but only
// via an epoch reclamation action, never directly from the write path.
type Allocator interface {
	// Get returns a buffer of length n.
	Get(n int) []byte

	// Put recycles a buffer previously returned by Get. Callers must
	// guarantee no reader can still observe it.
	Put(buf []byte)
}

type heapAllocator struct{}

// NewHeapAllocator returns an allocator backed by the Go heap. Put is a
// no-op; the garbage collector reclaims buffers.
func NewHeapAllocator() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Get(n int) []byte { return make([]byte, n) }

func (heapAllocator) Put([]byte) {}

type pooledAllocator struct{}

// NewPooledAllocator returns an allocator backed by a size-classed buffer
// pool. Put actually recycles, which is why reclamation of displaced
// buffers must be epoch-deferred: a pooled buffer handed out again while a
// reader still holds it would be observable corruption.
func NewPooledAllocator() Allocator {
	return pooledAllocator{}
}

func (pooledAllocator) Get(n int) []byte {
	buf := bytesbufferpool.Get(n)
	if cap(buf) < n {
		// The pool caps buffers at its largest size class; bigger
		// requests fall back to the heap.
		bytesbufferpool.Put(buf)
		return make([]byte, n)
	}
	return buf[:n]
}

func (pooledAllocator) Put(buf []byte) {
	bytesbufferpool.Put(buf)
}
