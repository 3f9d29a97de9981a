package cache

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	return New(Config{Path: filepath.Join(t.TempDir(), "cache.json")})
}

func TestCache_PutGet(t *testing.T) {
	c := newTestCache(t)

	err := c.Put("key", json.RawMessage(`{"a":1}`), time.Hour)
	require.NoError(t, err)

	value, ok, err := c.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(value))
}

func TestCache_ZeroTTLIsImmediatelyStale(t *testing.T) {
	c := newTestCache(t)

	err := c.Put("key", json.RawMessage(`"value"`), 0)
	require.NoError(t, err)

	_, ok, err := c.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_MissingKey(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_ExpiryBoundary(t *testing.T) {
	c := newTestCache(t)

	base := time.Now()
	c.now = func() time.Time { return base }
	require.NoError(t, c.Put("key", json.RawMessage(`1`), 10*time.Second))

	// Just inside the TTL
	c.now = func() time.Time { return base.Add(9 * time.Second) }
	_, ok, err := c.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)

	// Exactly at the TTL counts as expired
	c.now = func() time.Time { return base.Add(10 * time.Second) }
	_, ok, err = c.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_ExpiredEntryOverwrittenByNextPut(t *testing.T) {
	c := newTestCache(t)

	base := time.Now()
	c.now = func() time.Time { return base }
	require.NoError(t, c.Put("key", json.RawMessage(`"old"`), time.Second))

	c.now = func() time.Time { return base.Add(time.Minute) }
	_, ok, err := c.Get("key")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put("key", json.RawMessage(`"new"`), time.Hour))
	value, ok, err := c.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"new"`, string(value))
}

func TestCache_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	first := New(Config{Path: path})
	require.NoError(t, first.Put("key", json.RawMessage(`42`), time.Hour))

	second := New(Config{Path: path})
	value, ok, err := second.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `42`, string(value))
}

func TestCache_DistinctTTLClasses(t *testing.T) {
	assert.Less(t, TTLDetail, TTLListing)
	assert.Less(t, TTLListing, TTLReference)
}
