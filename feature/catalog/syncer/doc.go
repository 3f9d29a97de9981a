// Package syncer drives catalog synchronization runs.
//
// SyncAll partitions the upstream listing into batches, transforms items with
// a bounded worker pool, and rewrites the store wholesale with the successful
// set; per-item failures are aggregated into the result and a dated error
// record. SyncOne and SyncMany merge individual items through the store's
// upsert path.
//
// Only the orchestrator writes the store; worker goroutines never do. One
// orchestrator invocation per store file at a time is a documented
// precondition enforced by external scheduling.
package syncer
