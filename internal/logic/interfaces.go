package logic

import "advselect/internal/domain"

// CatalogStore provides access to the current item catalog
type CatalogStore interface {
	Items() []domain.Item
	Version() int
	Replace(items []domain.Item) int
}

// SelectionStore owns the controlled selection value. The engine proposes
// replacements; the store accepts them and reports what changed.
type SelectionStore interface {
	Get() []string
	Set(next []string) (added, removed []string)
	Count() int
}
