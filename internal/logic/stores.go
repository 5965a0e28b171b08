package logic

import (
	"sync"

	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/eventbus"
)

// MemoryCatalogStore is an in-memory implementation of CatalogStore. Each
// replacement bumps the version so callers can tell catalogs apart.
type MemoryCatalogStore struct {
	mu      sync.RWMutex
	items   []domain.Item
	version int
}

// NewMemoryCatalogStore creates a new memory-based catalog store
func NewMemoryCatalogStore(items []domain.Item) *MemoryCatalogStore {
	return &MemoryCatalogStore{
		items:   items,
		version: 1,
	}
}

func (s *MemoryCatalogStore) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *MemoryCatalogStore) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Replace swaps the whole catalog and returns the new version
func (s *MemoryCatalogStore) Replace(items []domain.Item) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.version++
	return s.version
}

// MemorySelectionStore is an in-memory implementation of SelectionStore
type MemorySelectionStore struct {
	mu        sync.RWMutex
	selection []string
	bus       eventbus.EventBus
}

// NewMemorySelectionStore creates a selection store. bus may be nil.
func NewMemorySelectionStore(initial []string, bus eventbus.EventBus) *MemorySelectionStore {
	return &MemorySelectionStore{
		selection: engine.Normalize(initial),
		bus:       bus,
	}
}

// Get returns a copy of the current selection
func (s *MemorySelectionStore) Get() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]string, len(s.selection))
	copy(result, s.selection)
	return result
}

// Set accepts a proposed selection and publishes a SelectionChangedEvent
// when it differs from the current one
func (s *MemorySelectionStore) Set(next []string) (added, removed []string) {
	s.mu.Lock()
	added, removed = engine.Diff(s.selection, next)
	s.selection = append([]string(nil), next...)
	total := len(s.selection)
	s.mu.Unlock()

	if s.bus != nil && (len(added) > 0 || len(removed) > 0) {
		s.bus.Publish(eventbus.SelectionChangedEvent{
			Added:   added,
			Removed: removed,
			Total:   total,
		})
	}
	return added, removed
}

func (s *MemorySelectionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selection)
}
