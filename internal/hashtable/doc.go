// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
//
// This package implements a sharded hash table for byte-slice keys and
// values with the following features:
//
//   - Sharding: murmur3-selected shards, power-of-two shard count
//   - Fine-grained Locking: per-shard RWMutex for minimal contention
//   - Epoch-bound Writes: the write path never frees displaced value
//     buffers directly; it registers a reclamation action with the
//     epoch.ActionManager it was bound to
//   - Read View: a pull iterator that captures one shard at a time under a
//     read lock, so traversal never blocks concurrent readers
//
// Usage:
//
//	t, _ := hashtable.New(hashtable.DefaultSettings(), hashtable.NewHeapAllocator())
//	w := hashtable.NewWritable(t, epochManager)
//	_ = w.Add([]byte("key"), []byte("value"))
//
// Thread Safety:
//
// Reads (Get, Iterator) are safe under any concurrency. At most one
// Writable may mutate the table at a time; that exclusivity is a caller
// obligation, not enforced here.
//
// @adr AD-0301
package hashtable
