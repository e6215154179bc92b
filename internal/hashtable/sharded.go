// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

import (
	"sync"

	"github.com/spaolacci/murmur3"
)

type entry struct {
	key   string
	value []byte
}

type shard struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// Table is a sharded concurrent hash table for byte-slice keys and values.
//
// Value buffers come from the table's Allocator and are immutable once
// stored; the write path replaces buffers, it never mutates them in place.
// That immutability is what makes the read view safe without copying.
type Table struct {
	settings  Settings
	shards    []*shard
	shardMask uint64
	alloc     Allocator
	perf      PerfData
}

// New allocates an empty table configured by settings and bound to alloc.
// The returned table is uniquely owned by the caller.
func New(settings Settings, alloc Allocator) (*Table, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = NewHeapAllocator()
	}

	t := &Table{
		settings:  settings,
		shards:    make([]*shard, settings.NumShards),
		shardMask: uint64(settings.NumShards - 1),
		alloc:     alloc,
	}
	hint := int(settings.BucketHint)
	for i := range t.shards {
		t.shards[i] = &shard{items: make(map[string][]byte, hint)}
	}
	return t, nil
}

// Settings returns the table's configuration.
func (t *Table) Settings() Settings {
	return t.settings
}

// PerfData returns the table's counters.
func (t *Table) PerfData() *PerfData {
	return &t.perf
}

// Allocator returns the allocator backing the table's value buffers.
func (t *Table) Allocator() Allocator {
	return t.alloc
}

func (t *Table) getShard(key []byte) *shard {
	return t.shards[murmur3.Sum64(key)&t.shardMask]
}

// Get retrieves the value stored under key. The returned buffer is the
// table's own storage: it stays valid while the caller holds an epoch guard
// (or while writers are suspended), and must not be modified.
func (t *Table) Get(key []byte) ([]byte, bool) {
	s := t.getShard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[string(key)]
	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// Count returns the number of live records.
func (t *Table) Count() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}
