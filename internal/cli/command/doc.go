// Package command provides CLI command definitions for HashSnap.
//
// Commands operate directly on a snapshot directory:
//
//   - list: List snapshots in the data directory
//   - inspect: Show settings and record statistics for a snapshot
//   - dump: Print the records of a snapshot
//   - seed: Generate a snapshot with random records
//   - stats: Show gauges for the latest snapshot and the data directory
//   - prune: Apply the retention policy
//
// Configuration is resolved once in the app's Before hook with the
// usual priority: flags over environment variables over the config
// file over defaults.
//
// @design DS-0601
package command
