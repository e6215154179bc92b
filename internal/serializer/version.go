// Package serializer implements the versioned snapshot protocol.
package serializer

import (
	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/stream"
)

// CurrentVersion is the version tag written by every new snapshot.
const CurrentVersion uint8 = 3

// Presence flag values terminating or continuing the record sequence.
const (
	flagRecordFollows uint8 = 1
	flagEndOfRecords  uint8 = 0
)

// Properties carries deserializer configuration. The current version does
// not consume any of it; the parameter exists so future versions can be
// configured without changing the driver's signature.
type Properties map[string]string

// versionReader deserializes the remainder of a stream whose version tag
// has already been consumed. Each registered version is frozen: a new
// format version adds a new reader, it never edits an existing one.
type versionReader interface {
	deserialize(alloc hashtable.Allocator, r stream.Reader) (*hashtable.Table, error)
}

// versionReaders maps every dispatchable version tag to its reader
// constructor. Deprecated versions stay registered verbatim; removing one
// is a major compatibility break.
var versionReaders = map[uint8]func(props Properties) versionReader{
	CurrentVersion: func(props Properties) versionReader {
		return &currentDeserializer{props: props}
	},
}
