// Package cache provides a file-backed key/value cache with per-entry TTLs.
//
// It backs repeated reads of slow-changing upstream catalog resources. The
// persisted form is a single JSON map, loaded and rewritten wholesale on each
// operation; expected data volumes make this acceptable, and the known
// scaling limit is documented rather than engineered around.
//
// Expired entries are treated as misses on read and are not proactively
// purged; the cost is a stale map entry until the next Put for that key.
package cache
