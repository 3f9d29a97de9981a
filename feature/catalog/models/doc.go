// Package models defines the canonical catalog record shapes shared by the
// transform pipeline, the store, and the HTTP/CLI surfaces.
package models
