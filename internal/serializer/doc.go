// Package serializer implements the versioned snapshot protocol for
// HashSnap tables.
//
// Wire format (current version, tag = 3), all integers little-endian:
//
//	[VersionTag: u8 = 3]
//	[TableSettings: hashtable.SettingsSize opaque bytes]
//	repeat {
//	  [PresenceFlag: u8, 1 = record follows, 0 = end]
//	  [KeyLen: u32][KeyBytes][ValueLen: u32][ValueBytes]
//	} until PresenceFlag == 0
//
// Serialization always targets the current version. Deserialization reads
// one version tag and dispatches to the matching frozen reader; adding a
// format version means registering one new reader, never editing an old
// one. Deprecated readers stay dispatchable until a major compatibility
// break.
//
// Replay rebuilds the table through the regular write path, bound to a
// replay guard: a write-observer whose only behavior is to fail. A correct
// snapshot contains unique keys, so replay never displaces a record and the
// guard is never invoked; a duplicate key or a misaligned record boundary
// trips it immediately instead of corrupting the rebuilt table.
//
// @req RQ-0302
// @design DS-0301
package serializer
