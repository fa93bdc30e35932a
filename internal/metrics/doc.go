// Package metrics provides Prometheus metrics for an update run.
//
// Key metrics:
//   - Listings fetched and points written per pair
//   - Pair failures by error kind
//   - Pair processing duration
//   - Timestamp of the last successful run
//
// The process exits after a run, so metrics are written to a
// node_exporter textfile instead of being served.
package metrics
