// Package config defines the HashSnap configuration structure.
package config

// Spec is the root configuration for HashSnap tools.
type Spec struct {
	Storage StorageSection `koanf:"storage"`
	Table   TableSection   `koanf:"table"`
	Log     LogSection     `koanf:"log"`
}

// StorageSection configures snapshot storage behavior.
type StorageSection struct {
	// DataDir is the snapshot directory.
	DataDir string `koanf:"data_dir"`

	// SnapshotKeep is the number of snapshots retained by pruning.
	SnapshotKeep int `koanf:"snapshot_keep"`

	// SnapshotKeepDays retains snapshots younger than this many days.
	// Negative disables age-based retention.
	SnapshotKeepDays int `koanf:"snapshot_keep_days"`
}

// TableSection configures tables created from this configuration.
type TableSection struct {
	// Shards is the shard count. Must be a power of two.
	Shards int `koanf:"shards"`

	// BucketHint is the initial per-shard capacity hint.
	BucketHint int `koanf:"bucket_hint"`

	// MaxKeySize caps key length in bytes. Zero means unlimited.
	MaxKeySize int `koanf:"max_key_size"`

	// MaxValueSize caps value length in bytes. Zero means unlimited.
	MaxValueSize int `koanf:"max_value_size"`

	// PooledAllocator backs table memory with the buffer pool instead
	// of the heap.
	PooledAllocator bool `koanf:"pooled_allocator"`
}

// LogSection configures logging.
type LogSection struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the output format (json, text).
	Format string `koanf:"format"`
}
