package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(makeCatalog(20))
	require.NoError(t, err)
	b, err := Fingerprint(makeCatalog(20))
	require.NoError(t, err)
	c, err := Fingerprint(makeCatalog(21))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same content hashes the same")
	assert.NotEqual(t, a, c)

	reordered := makeCatalog(20)
	reordered[0], reordered[1] = reordered[1], reordered[0]
	d, err := Fingerprint(reordered)
	require.NoError(t, err)
	assert.NotEqual(t, a, d, "order is part of the catalog identity")
}

func TestCache_BoundedAndPurged(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	cache.add(1, "a", derivation{})
	cache.add(1, "b", derivation{})
	cache.add(1, "c", derivation{})
	assert.Equal(t, 2, cache.Len())

	_, ok := cache.get(1, "a")
	assert.False(t, ok, "oldest entry evicted")
	_, ok = cache.get(2, "c")
	assert.False(t, ok, "fingerprint is part of the key")

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestNewCache_DefaultSize(t *testing.T) {
	cache, err := NewCache(0)
	require.NoError(t, err)
	assert.NotNil(t, cache)
}
