// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"fmt"

	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/stream"
)

// currentSerializer writes the current-version format.
type currentSerializer struct{}

// serialize walks the table's read view and emits settings plus records.
//
// Precondition: no concurrent structural mutation for the duration of the
// call. Concurrent lock-free readers are fine; the caller must suspend
// writers, this component takes no table-wide lock itself.
func (currentSerializer) serialize(t *hashtable.Table, w stream.Writer) error {
	if err := w.Begin(); err != nil {
		return fmt.Errorf("serializer: begin: %w", err)
	}

	perf := t.PerfData()
	perf.Set(hashtable.RecordsSavedFromSerializer, 0)

	// Accumulated locally; a single atomic store publishes the count at
	// the end of the operation, including the error paths.
	var written int64
	defer func() {
		perf.Set(hashtable.RecordsSavedFromSerializer, written)
	}()

	if err := writeUint8(w, CurrentVersion); err != nil {
		return fmt.Errorf("serializer: write version: %w", err)
	}

	blob, err := t.Settings().MarshalBinary()
	if err != nil {
		return err
	}
	if err := w.Write(blob); err != nil {
		return fmt.Errorf("serializer: write settings: %w", err)
	}

	it := t.Iterator()
	for it.MoveNext() {
		if err := writeUint8(w, flagRecordFollows); err != nil {
			return fmt.Errorf("serializer: write presence flag: %w", err)
		}
		if err := encodeRecord(w, it.Key(), it.Value()); err != nil {
			return err
		}
		written++
	}

	if err := writeUint8(w, flagEndOfRecords); err != nil {
		return fmt.Errorf("serializer: write end flag: %w", err)
	}

	return w.End()
}
