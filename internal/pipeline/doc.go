// Package pipeline runs an update: for every configured pair it fetches
// the listings, aggregates them per item and writes one batch of points.
//
// A run moves through these states, each logged with the run id:
//
//	authenticated -> fetching -> aggregating -> writing -> done
//	                      \___________\____________\-> failed
//
// By default pairs run one at a time and the first error stops the run.
// Pairs written before the failure stay written. With isolation enabled
// every pair is attempted and failures are collected in the Report.
package pipeline
