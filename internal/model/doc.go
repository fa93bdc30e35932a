// Package model defines shared data types used across the auction statistics pipeline.
//
// Conventions:
//   - Prices: integer copper (1 gold = 10,000 copper), as returned by the API
//   - IDs: int64 for items, listings, connected realms and auction houses
//   - Timestamps: time.Time, UTC, set once per pair write
package model
