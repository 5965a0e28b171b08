package engine

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"

	"advselect/internal/domain"
)

// DefaultCacheSize bounds how many (catalog, query) derivations are kept
const DefaultCacheSize = 64

// Fingerprint hashes catalog content so caches can be keyed by what the
// catalog holds rather than by slice identity.
func Fingerprint(catalog []domain.Item) (uint64, error) {
	hash, err := hashstructure.Hash(catalog, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}
	return hash, nil
}

type cacheKey struct {
	fingerprint uint64
	query       string
}

// derivation is the filter and row-builder output for one query
type derivation struct {
	filtered    []domain.Item
	filteredIDs []string
	rows        []domain.Row
}

// Cache memoizes filtered items and rows per catalog fingerprint and
// normalized query. It is owned by the caller and handed to a Session;
// purge it when the catalog is replaced.
type Cache struct {
	entries *lru.Cache[cacheKey, derivation]
}

// NewCache creates a cache holding up to size derivations
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, derivation](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

func (c *Cache) get(fingerprint uint64, query string) (derivation, bool) {
	return c.entries.Get(cacheKey{fingerprint: fingerprint, query: query})
}

func (c *Cache) add(fingerprint uint64, query string, d derivation) {
	c.entries.Add(cacheKey{fingerprint: fingerprint, query: query}, d)
}

// Len returns the number of cached derivations
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached derivation
func (c *Cache) Purge() {
	c.entries.Purge()
}
