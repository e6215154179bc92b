// Package stream defines the byte stream boundary used by the snapshot
// serializer.
//
// A stream is bracketed by Begin and End and moves raw bytes with
// exact-count semantics: a short transfer is a fault, never a silent
// zero-fill. Two transports are provided:
//
//   - Buffer / BufferReader: in-memory, no framing. The bytes observed are
//     exactly the protocol bytes.
//   - FileWriter / FileReader: file-backed. Begin writes or validates the
//     magic bytes, End appends or verifies a sha256 trailer over the
//     payload. The framing belongs to the transport; the serialization
//     protocol never sees it.
//
// @design DS-0302
package stream
