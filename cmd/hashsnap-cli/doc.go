// Package main provides the entry point for hashsnap-cli.
//
// The CLI tool operates on HashSnap snapshot directories:
//
//   - Snapshot listing and retention (list, prune)
//   - Snapshot inspection (inspect, dump)
//   - Test data generation (seed)
//
// Usage:
//
//	hashsnap-cli [command] [flags]
//	hashsnap-cli --data-dir /var/lib/hashsnap list
//	hashsnap-cli inspect snapshot-01h2xcejqtf2nbrexx3vqjhp41 --output json
//
// @design DS-0601
package main
