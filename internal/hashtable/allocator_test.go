package hashtable

import "testing"

func TestHeapAllocator(t *testing.T) {
	alloc := NewHeapAllocator()
	buf := alloc.Get(16)
	if len(buf) != 16 {
		t.Fatalf("Get(16) returned %d bytes", len(buf))
	}
	alloc.Put(buf)
}

func TestPooledAllocatorSizes(t *testing.T) {
	alloc := NewPooledAllocator()

	// Sizes on both sides of the pool's largest size class; every request
	// must come back with exactly the requested length and be writable
	// end to end.
	sizes := []int{0, 1, 300, 4096, 1 << 20, 33 << 20}
	for _, n := range sizes {
		buf := alloc.Get(n)
		if len(buf) != n {
			t.Fatalf("Get(%d) returned %d bytes", n, len(buf))
		}
		if n > 0 {
			buf[0] = 0xFF
			buf[n-1] = 0xFF
		}
		alloc.Put(buf)
	}
}
