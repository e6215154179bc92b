// Package stream defines the byte stream boundary used by the snapshot
// serializer.
package stream

import "errors"

var (
	// ErrInvalidMagic reports a file that does not start with the
	// snapshot magic bytes.
	ErrInvalidMagic = errors.New("stream: invalid magic bytes")

	// ErrChecksumMismatch reports a file whose sha256 trailer does not
	// match its payload.
	ErrChecksumMismatch = errors.New("stream: checksum mismatch")
)

// Writer is a Begin/End-bracketed byte sink.
//
// Write has exact-count semantics: it either consumes all of p or returns
// an error. Begin is idempotent; End flushes transport framing and must be
// called exactly once after the last Write.
type Writer interface {
	Begin() error
	Write(p []byte) error
	End() error
}

// Reader is a Begin/End-bracketed byte source.
//
// Read fills all of p or returns an error; a short transfer surfaces as
// io.ErrUnexpectedEOF. Begin is idempotent and may validate transport
// framing before any payload byte is served.
type Reader interface {
	Begin() error
	Read(p []byte) error
	End() error
}
