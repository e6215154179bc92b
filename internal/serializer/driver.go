// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"fmt"

	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/stream"
)

// Serializer is the driver for writing snapshots. Writing always targets
// the current format version.
type Serializer struct{}

// NewSerializer creates a snapshot serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize writes t to w, bracketing the stream with Begin and End.
//
// The caller guarantees no concurrent structural mutation of t for the
// duration of the call; concurrent readers of t are safe.
func (s *Serializer) Serialize(t *hashtable.Table, w stream.Writer) error {
	return currentSerializer{}.serialize(t, w)
}

// Deserializer is the driver for reading snapshots of any registered
// version.
type Deserializer struct {
	props Properties
}

// NewDeserializer creates a snapshot deserializer. props is reserved for
// version-specific configuration and may be nil.
func NewDeserializer(props Properties) *Deserializer {
	return &Deserializer{props: props}
}

// Deserialize reads one snapshot from r and returns the reconstructed
// table, uniquely owned by the caller. On error no table is returned.
//
// The driver owns the Begin call and the version dispatch; the selected
// version reader owns the matching End call. On an unregistered version
// tag no byte past the tag is consumed, leaving the stream position useful
// for diagnostics.
func (d *Deserializer) Deserialize(alloc hashtable.Allocator, r stream.Reader) (*hashtable.Table, error) {
	if err := r.Begin(); err != nil {
		return nil, fmt.Errorf("serializer: begin: %w", err)
	}

	tag, err := readUint8(r)
	if err != nil {
		return nil, fmt.Errorf("serializer: read version: %w", err)
	}

	mk, ok := versionReaders[tag]
	if !ok {
		return nil, &UnsupportedVersionError{Version: tag}
	}
	return mk(d.props).deserialize(alloc, r)
}
