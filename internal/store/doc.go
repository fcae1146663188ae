// Package store provides SQLite-backed persistence for the reflection
// condition database.
//
// The schema mirrors the nested JSON output: space_groups, their settings,
// and per-setting zone conditions, with explicit position columns so the
// processing order and the canonical zone order survive round trips.
//
// Database configuration:
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
