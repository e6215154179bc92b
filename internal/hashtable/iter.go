// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

// Iterator is the read-only traversal capability over a table.
//
// It captures one shard at a time under that shard's read lock, then walks
// the captured entries lock-free. Concurrent readers are never blocked;
// traversal order is an implementation detail and not stable across runs
// (Go randomizes map iteration within a shard).
//
// The key and value buffers exposed between MoveNext calls reference table
// storage. They are safe while writers are suspended or while the caller
// holds an epoch guard.
type Iterator struct {
	t        *Table
	shardIdx int
	entries  []entry
	pos      int
}

// Iterator returns a traversal positioned before the first record.
func (t *Table) Iterator() *Iterator {
	return &Iterator{t: t, shardIdx: -1, pos: -1}
}

// MoveNext advances to the next record. It returns false once the
// traversal is exhausted.
func (it *Iterator) MoveNext() bool {
	it.pos++
	for it.pos >= len(it.entries) {
		it.shardIdx++
		if it.shardIdx >= len(it.t.shards) {
			return false
		}
		it.entries = it.captureShard(it.t.shards[it.shardIdx])
		it.pos = 0
	}
	return true
}

func (it *Iterator) captureShard(s *shard) []entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return nil
	}
	entries := make([]entry, 0, len(s.items))
	for k, v := range s.items {
		entries = append(entries, entry{key: k, value: v})
	}
	return entries
}

// Key returns the current record's key. Only valid after MoveNext returned
// true.
func (it *Iterator) Key() []byte {
	return []byte(it.entries[it.pos].key)
}

// Value returns the current record's value buffer. Only valid after
// MoveNext returned true.
func (it *Iterator) Value() []byte {
	return it.entries[it.pos].value
}
