// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"errors"
	"fmt"
)

// ErrReplayInvariant reports that the write path requested a deferred
// reclamation during replay. That can only happen when the stream carried a
// duplicate key, a corrupted record boundary caused misaligned re-reads, or
// the format and table versions disagree. It is fatal and never retried.
var ErrReplayInvariant = errors.New(
	"serializer: reclamation requested during replay (duplicate key or corrupt record stream)")

// UnsupportedVersionError reports a version tag with no registered reader.
type UnsupportedVersionError struct {
	Version uint8
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("serializer: unsupported snapshot version %d", e.Version)
}
