// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

import (
	"errors"

	"github.com/yndnr/hashsnap-go/internal/epoch"
)

var (
	// ErrKeyTooLarge reports a key exceeding Settings.MaxKeySize.
	ErrKeyTooLarge = errors.New("hashtable: key exceeds configured maximum size")

	// ErrValueTooLarge reports a value exceeding Settings.MaxValueSize.
	ErrValueTooLarge = errors.New("hashtable: value exceeds configured maximum size")
)

// Writable is the sole capability permitted to mutate a table. It is bound
// to an epoch.ActionManager: any buffer the mutation displaces is handed to
// the observer as a deferred reclamation action, and the observer's error
// aborts the mutation's caller.
//
// At most one Writable may be active on a table at a time.
type Writable struct {
	t        *Table
	observer epoch.ActionManager
}

// NewWritable binds a write capability to t using observer.
func NewWritable(t *Table, observer epoch.ActionManager) *Writable {
	return &Writable{t: t, observer: observer}
}

// Add inserts or replaces the record under key. The value is copied into a
// buffer from the table's allocator. Replacing an existing record registers
// reclamation of the displaced buffer with the bound observer; the
// observer's error is returned as-is.
func (w *Writable) Add(key, value []byte) error {
	set := w.t.settings
	if set.MaxKeySize > 0 && uint32(len(key)) > set.MaxKeySize {
		return ErrKeyTooLarge
	}
	if set.MaxValueSize > 0 && uint32(len(value)) > set.MaxValueSize {
		return ErrValueTooLarge
	}

	buf := w.t.alloc.Get(len(value))
	copy(buf, value)

	s := w.t.getShard(key)
	s.mu.Lock()
	old, existed := s.items[string(key)]
	s.items[string(key)] = buf
	s.mu.Unlock()

	perf := &w.t.perf
	if existed {
		perf.Add(TotalValueSize, int64(len(value)-len(old)))
		// The old buffer may still be visible to readers in earlier
		// epochs; reclaiming it is the observer's call.
		alloc := w.t.alloc
		return w.observer.RegisterAction(func() { alloc.Put(old) })
	}

	perf.Add(RecordsCount, 1)
	perf.Add(TotalKeySize, int64(len(key)))
	perf.Add(TotalValueSize, int64(len(value)))
	return nil
}

// Remove deletes the record under key. Returns whether a record existed.
// Like Add, the displaced buffer is reclaimed through the observer.
func (w *Writable) Remove(key []byte) (bool, error) {
	s := w.t.getShard(key)
	s.mu.Lock()
	old, existed := s.items[string(key)]
	if existed {
		delete(s.items, string(key))
	}
	s.mu.Unlock()

	if !existed {
		return false, nil
	}

	perf := &w.t.perf
	perf.Add(RecordsCount, -1)
	perf.Add(TotalKeySize, -int64(len(key)))
	perf.Add(TotalValueSize, -int64(len(old)))

	alloc := w.t.alloc
	return true, w.observer.RegisterAction(func() { alloc.Put(old) })
}
