// Package hashtable provides the concurrent hash table snapshotted by
// HashSnap.
package hashtable

import (
	"encoding/binary"
	"fmt"
)

// SettingsSize is the encoded size of Settings in bytes. The snapshot
// protocol copies exactly this many bytes, byte for byte.
const SettingsSize = 16

// Default sizing used when no configuration is supplied.
const (
	DefaultNumShards  = 16
	DefaultBucketHint = 1024
)

// Settings is the fixed-size configuration of a table. It travels inside
// snapshots verbatim, so every field must be fixed-width and the layout may
// only change together with the snapshot format version.
type Settings struct {
	// NumShards is the shard count. Must be a power of two.
	NumShards uint32

	// BucketHint is the initial per-shard capacity hint.
	BucketHint uint32

	// MaxKeySize caps key length in bytes. Zero means unlimited.
	MaxKeySize uint32

	// MaxValueSize caps value length in bytes. Zero means unlimited.
	MaxValueSize uint32
}

// DefaultSettings returns the default table configuration.
func DefaultSettings() Settings {
	return Settings{
		NumShards:  DefaultNumShards,
		BucketHint: DefaultBucketHint,
	}
}

// Validate checks structural constraints.
func (s Settings) Validate() error {
	if s.NumShards == 0 || s.NumShards&(s.NumShards-1) != 0 {
		return fmt.Errorf("hashtable: num_shards must be a power of two, got %d", s.NumShards)
	}
	return nil
}

// MarshalBinary encodes the settings as SettingsSize little-endian bytes.
func (s Settings) MarshalBinary() ([]byte, error) {
	buf := make([]byte, SettingsSize)
	binary.LittleEndian.PutUint32(buf[0:4], s.NumShards)
	binary.LittleEndian.PutUint32(buf[4:8], s.BucketHint)
	binary.LittleEndian.PutUint32(buf[8:12], s.MaxKeySize)
	binary.LittleEndian.PutUint32(buf[12:16], s.MaxValueSize)
	return buf, nil
}

// UnmarshalBinary decodes settings from exactly SettingsSize bytes.
func (s *Settings) UnmarshalBinary(data []byte) error {
	if len(data) != SettingsSize {
		return fmt.Errorf("hashtable: settings blob is %d bytes, want %d", len(data), SettingsSize)
	}
	s.NumShards = binary.LittleEndian.Uint32(data[0:4])
	s.BucketHint = binary.LittleEndian.Uint32(data[4:8])
	s.MaxKeySize = binary.LittleEndian.Uint32(data[8:12])
	s.MaxValueSize = binary.LittleEndian.Uint32(data[12:16])
	return nil
}
