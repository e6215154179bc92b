// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"fmt"

	"github.com/yndnr/hashsnap-go/internal/epoch"
	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/stream"
)

// replayGuard is the write-observer bound to the table during replay.
//
// Every key in a snapshot is unique (a property the writing table
// guaranteed), so replay only ever inserts fresh keys and the write path
// must never request a reclamation action. The guard therefore refuses
// every registration: a deliberate trap, not a no-op, so that a duplicate
// key fails loudly instead of silently corrupting the rebuilt table.
type replayGuard struct{}

func (replayGuard) RegisterAction(epoch.Action) error {
	return ErrReplayInvariant
}

// currentDeserializer reads the current-version format. The version tag has
// already been consumed when deserialize runs; it starts at the settings
// blob and owns the stream's End call.
type currentDeserializer struct {
	props Properties
}

func (d *currentDeserializer) deserialize(alloc hashtable.Allocator, r stream.Reader) (*hashtable.Table, error) {
	blob := make([]byte, hashtable.SettingsSize)
	if err := r.Read(blob); err != nil {
		return nil, fmt.Errorf("serializer: read settings: %w", err)
	}
	var settings hashtable.Settings
	if err := settings.UnmarshalBinary(blob); err != nil {
		return nil, err
	}

	table, err := hashtable.New(settings, alloc)
	if err != nil {
		return nil, err
	}

	// The fresh table is invisible to other goroutines until returned,
	// so replay needs no synchronization — only the guard.
	writable := hashtable.NewWritable(table, replayGuard{})

	perf := table.PerfData()
	var loaded int64
	defer func() {
		perf.Set(hashtable.RecordsLoadedFromSerializer, loaded)
	}()

	var keyScratch, valueScratch scratch
	defer keyScratch.release()
	defer valueScratch.release()

	more, err := readUint8(r)
	if err != nil {
		return nil, fmt.Errorf("serializer: read presence flag: %w", err)
	}
	for more != flagEndOfRecords {
		key, err := decodeBlock(r, &keyScratch, "key")
		if err != nil {
			return nil, err
		}
		value, err := decodeBlock(r, &valueScratch, "value")
		if err != nil {
			return nil, err
		}

		// Always a fresh insert on a correct stream; a replace here
		// trips the replay guard inside Add.
		if err := writable.Add(key, value); err != nil {
			return nil, err
		}
		loaded++

		more, err = readUint8(r)
		if err != nil {
			return nil, fmt.Errorf("serializer: read presence flag: %w", err)
		}
	}

	if err := r.End(); err != nil {
		return nil, fmt.Errorf("serializer: end: %w", err)
	}
	return table, nil
}
