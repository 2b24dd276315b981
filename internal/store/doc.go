// Package store provides SQLite-backed storage for the invocation log.
//
// The log is append-only: every encoded payload the tool sends (or would
// send) is recorded with the component, function, and canonical wire JSON.
// Ordering uses seq INTEGER (a logical clock), never timestamps, so
// listings are stable across machines.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
