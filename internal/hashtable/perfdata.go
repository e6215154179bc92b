// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

import "sync/atomic"

// Counter identifies a per-table performance counter.
type Counter int

const (
	// RecordsCount is the number of live records.
	RecordsCount Counter = iota

	// TotalKeySize is the sum of live key lengths in bytes.
	TotalKeySize

	// TotalValueSize is the sum of live value lengths in bytes.
	TotalValueSize

	// RecordsSavedFromSerializer counts records written by the last
	// serialize operation.
	RecordsSavedFromSerializer

	// RecordsLoadedFromSerializer counts records replayed by the last
	// deserialize operation.
	RecordsLoadedFromSerializer

	numCounters
)

var counterNames = [numCounters]string{
	"records_count",
	"total_key_size",
	"total_value_size",
	"records_saved_from_serializer",
	"records_loaded_from_serializer",
}

func (c Counter) String() string {
	if c < 0 || c >= numCounters {
		return "unknown"
	}
	return counterNames[c]
}

// Counters returns all defined counters, in declaration order.
func Counters() []Counter {
	out := make([]Counter, numCounters)
	for i := range out {
		out[i] = Counter(i)
	}
	return out
}

// PerfData holds the table's monotonic counters.
//
// Set and Add publish with atomic stores, so a concurrent Get observes a
// value at least as recent as the last publish. Bulk operations such as
// serialization accumulate locally and publish once at the end rather than
// paying an atomic per record; mid-operation reads then see either the
// pre-operation value or the final one.
type PerfData struct {
	counters [numCounters]atomic.Int64
}

// Get returns the current value of c.
func (p *PerfData) Get(c Counter) int64 {
	return p.counters[c].Load()
}

// Set publishes v as the value of c.
func (p *PerfData) Set(c Counter, v int64) {
	p.counters[c].Store(v)
}

// Add adds delta to c and publishes the result.
func (p *PerfData) Add(c Counter, delta int64) {
	p.counters[c].Add(delta)
}

// Snapshot returns a copy of all counter values.
func (p *PerfData) Snapshot() map[string]int64 {
	out := make(map[string]int64, numCounters)
	for i := Counter(0); i < numCounters; i++ {
		out[i.String()] = p.counters[i].Load()
	}
	return out
}
