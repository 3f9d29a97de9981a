// Package store persists the canonical catalog as a single JSON document
// with crash-safe writes.
//
// Every save serializes the whole collection to a temporary file and renames
// it over the canonical location, after copying the previous file to a
// timestamped backup. Only the most recent N backups are retained. Load
// recovers from the newest parseable backup when the canonical file is
// corrupt.
//
// The merge engine lives on Document: Upsert keys on the upstream sync
// identifier and preserves the locally generated record identity and creation
// timestamp across updates.
//
// The store assumes a single logical writer per file. Whole-file
// read-modify-write is a deliberate trade for the expected data volumes; at
// larger scale this layout would need an indexed engine.
package store
