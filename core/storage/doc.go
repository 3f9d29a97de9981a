// Package storage provides the object storage client used to mirror store
// snapshots off host.
//
// Mirroring is optional: when no endpoint is configured the store simply
// keeps its local backup ring. When enabled, every saved snapshot is also
// uploaded to the configured bucket on a best-effort basis.
package storage
