// Package writer turns per-item auction statistics into time-series points
// and writes them, one batch per (realm, auction house) pair.
//
// Backends:
//   - InfluxDB v2 (measurement "auctions" in the configured bucket)
//   - TimescaleDB (hypertable "auctions")
//
// Writers are append-only and never retry a failed batch.
package writer
