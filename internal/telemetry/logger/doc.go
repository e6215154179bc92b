// Package logger provides structured logging for HashSnap.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: Logger interface, configuration, slog handler setup
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Context propagation
//
// @req RQ-0403
// @design DS-0402
package logger
