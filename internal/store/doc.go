// Package store provides SQLite-backed storage for conformance run history.
//
// Every saved run keeps its full ResultSet:
//   - runs: one row per suite run, with pass/fail counts and a digest of the
//     canonical JSON report
//   - results: one row per case, keyed by (run_id, position)
//   - metadata: tagged text/binary values attached to each case
//
// # Ordering
//
// Runs are stamped with a logical seq from a monotonic Clock, never with
// wall-clock time. Listings are ordered by seq and results by position, so
// reading a run back yields the exact suite order it was saved in.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
