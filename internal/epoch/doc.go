// Package epoch provides epoch-based deferred reclamation for HashSnap.
//
// Writers that displace memory still visible to concurrent readers must not
// recycle it immediately. Instead they register a reclamation action with an
// ActionManager; the Manager runs the action once every reader that could
// have observed the old memory has left its epoch.
//
// The Manager tracks three epochs: actions registered in epoch E run only
// after all readers pinned at E or earlier have exited and the epoch has
// been advanced twice.
//
// @req RQ-0301
// @design DS-0303
package epoch
