package cache

// Config holds configuration for the file-backed TTL cache.
type Config struct {
	// Path is the location of the cache file (JSON key -> entry map).
	Path string `mapstructure:"path" default:"data/cache.json"`
}
