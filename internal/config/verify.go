// Package config defines the HashSnap configuration structure.
package config

import "fmt"

// Verify checks the configuration for structural errors.
func (s Spec) Verify() error {
	if s.Storage.DataDir == "" {
		return fmt.Errorf("config: storage.data_dir is required")
	}
	if s.Table.Shards <= 0 || s.Table.Shards&(s.Table.Shards-1) != 0 {
		return fmt.Errorf("config: table.shards must be a power of two, got %d", s.Table.Shards)
	}
	if s.Table.MaxKeySize < 0 || s.Table.MaxValueSize < 0 {
		return fmt.Errorf("config: table size limits must not be negative")
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is not one of debug, info, warn, error", s.Log.Level)
	}
	switch s.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: log.format %q is not one of json, text", s.Log.Format)
	}
	return nil
}
