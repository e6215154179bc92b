// Package metric provides Prometheus metrics for HashSnap.
//
// It exposes table perf counters (live records, bytes, serializer
// save/load counts) and snapshot store totals as a prometheus.Collector.
//
// @design DS-0401
package metric
