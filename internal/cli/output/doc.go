// Package output provides output formatting for the HashSnap CLI.
//
// This package handles CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - table.go: Table rendering
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Formatters support multiple output formats (table, json, yaml) and
// machine-readable output for scripting.
//
// @design DS-0601
package output
