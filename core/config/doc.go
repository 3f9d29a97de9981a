// Package config loads the application configuration.
//
// Configuration comes from environment variables (optionally via a .env
// file) with defaults declared as struct tags on the per-package partial
// configs. There is no process-wide configuration singleton: callers load a
// Config once and pass the relevant partials into each component at
// construction.
package config
