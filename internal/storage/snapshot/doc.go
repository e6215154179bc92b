// Package snapshot provides snapshot file management for HashSnap.
//
// A Manager owns one snapshot directory. Creating a snapshot serializes a
// table through the versioned snapshot protocol into a checksummed file,
// written to a temp path and atomically renamed. Loading walks snapshots
// newest first and falls back past files that fail magic or checksum
// validation. A retention policy (count plus age, always keeping the
// newest) bounds disk usage.
//
// File layout is owned by the stream package: magic bytes, the protocol
// payload, and a sha256 trailer.
//
// @design DS-0304
package snapshot
