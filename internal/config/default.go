// Package config defines the HashSnap configuration structure.
package config

import (
	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/storage/snapshot"
)

// Default returns the default configuration.
func Default() Spec {
	return Spec{
		Storage: StorageSection{
			DataDir:          "./data/snapshots",
			SnapshotKeep:     snapshot.DefaultRetentionCount,
			SnapshotKeepDays: snapshot.DefaultRetentionDays,
		},
		Table: TableSection{
			Shards:     hashtable.DefaultNumShards,
			BucketHint: hashtable.DefaultBucketHint,
		},
		Log: LogSection{
			Level:  "info",
			Format: "json",
		},
	}
}

// TableSettings converts the table section into hashtable settings.
func (s Spec) TableSettings() hashtable.Settings {
	return hashtable.Settings{
		NumShards:    uint32(s.Table.Shards),
		BucketHint:   uint32(s.Table.BucketHint),
		MaxKeySize:   uint32(s.Table.MaxKeySize),
		MaxValueSize: uint32(s.Table.MaxValueSize),
	}
}

// Allocator returns the allocator selected by the table section.
func (s Spec) Allocator() hashtable.Allocator {
	if s.Table.PooledAllocator {
		return hashtable.NewPooledAllocator()
	}
	return hashtable.NewHeapAllocator()
}

// SnapshotConfig converts the storage section into a snapshot manager
// config.
func (s Spec) SnapshotConfig() snapshot.Config {
	return snapshot.Config{
		Dir:            s.Storage.DataDir,
		RetentionCount: s.Storage.SnapshotKeep,
		RetentionDays:  s.Storage.SnapshotKeepDays,
	}
}
