package engine

import (
	"strings"

	"advselect/internal/domain"
)

// NormalizeQuery trims and case-folds a raw query. Empty means no filtering.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Filter returns the items matching query, in catalog order.
// An empty query returns the catalog itself.
func Filter(catalog []domain.Item, query string) []domain.Item {
	q := NormalizeQuery(query)
	if q == "" {
		return catalog
	}

	filtered := make([]domain.Item, 0, len(catalog))
	for _, item := range catalog {
		if Matches(item, q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matches reports whether an already-normalized query is a substring of the
// item's label, group or space-joined keywords.
func Matches(item domain.Item, normalizedQuery string) bool {
	if normalizedQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Label), normalizedQuery) ||
		strings.Contains(strings.ToLower(item.Group), normalizedQuery) {
		return true
	}
	if len(item.Keywords) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(strings.Join(item.Keywords, " ")), normalizedQuery)
}

// FilteredIDs extracts the ids of items, preserving order
func FilteredIDs(items []domain.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
