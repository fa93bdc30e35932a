// Package database opens the TimescaleDB connection pool used by the
// timescale storage backend.
package database
