package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TTL classes for the upstream resources we cache. Collection listings move
// the most, taxonomy data the least.
const (
	TTLListing   = 1 * time.Hour
	TTLDetail    = 30 * time.Minute
	TTLReference = 24 * time.Hour
)

// Entry is a single cached value with its storage timestamp and lifetime.
type Entry struct {
	Value    json.RawMessage `json:"value"`
	StoredAt time.Time       `json:"stored_at"`
	TTL      int64           `json:"ttl_seconds"`
}

// Cache is a key/value store with per-entry expiry, persisted as a single
// JSON file. Every operation is a whole-file load-then-save, so callers must
// treat Put as O(total cache size) and keep high-frequency writes off this
// path. A mapping-level mutex serializes concurrent access within a process.
type Cache struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New creates a cache backed by the configured file. The file is created
// lazily on first Put.
func New(cfg Config) *Cache {
	return &Cache{
		path: cfg.Path,
		now:  time.Now,
	}
}

// Get returns the cached value for key, or ok=false when the key is absent
// or its entry has expired. Expired entries are left in place; they are
// overwritten by the next Put.
func (c *Cache) Get(key string) (json.RawMessage, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.loadLocked()
	if err != nil {
		return nil, false, err
	}

	entry, exists := entries[key]
	if !exists {
		return nil, false, nil
	}
	if c.now().Sub(entry.StoredAt) >= time.Duration(entry.TTL)*time.Second {
		return nil, false, nil
	}
	return entry.Value, true, nil
}

// Put stores value under key with the given lifetime, replacing any previous
// entry. A zero ttl makes the entry immediately stale.
func (c *Cache) Put(key string, value json.RawMessage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := c.loadLocked()
	if err != nil {
		return err
	}

	entries[key] = Entry{
		Value:    value,
		StoredAt: c.now(),
		TTL:      int64(ttl / time.Second),
	}
	return c.saveLocked(entries)
}

func (c *Cache) loadLocked() (map[string]Entry, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[string]Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	entries := map[string]Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse cache file %s: %w", c.path, err)
	}
	return entries, nil
}

func (c *Cache) saveLocked(entries map[string]Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
