package engine

import "advselect/internal/domain"

// Selection operations are pure: each takes the caller's current selection
// and returns a freshly allocated replacement. Ids unknown to the catalog are
// carried through every operation untouched.

// Toggle removes id if selected, otherwise appends it
func Toggle(selection []string, id string) []string {
	next := make([]string, 0, len(selection)+1)
	found := false
	for _, existing := range selection {
		if existing == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, id)
	}
	return next
}

// SelectAllFiltered keeps the current selection order and appends every
// filtered id not already present, in filtered order.
func SelectAllFiltered(selection, filteredIDs []string) []string {
	seen := make(map[string]struct{}, len(selection)+len(filteredIDs))
	next := make([]string, 0, len(selection)+len(filteredIDs))
	for _, ids := range [][]string{selection, filteredIDs} {
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			next = append(next, id)
		}
	}
	return next
}

// ClearFilteredSelection drops every id that is in filteredIDs. Ids selected
// under other filters stay.
func ClearFilteredSelection(selection, filteredIDs []string) []string {
	filtered := toSet(filteredIDs)
	next := make([]string, 0, len(selection))
	for _, id := range selection {
		if _, hit := filtered[id]; !hit {
			next = append(next, id)
		}
	}
	return next
}

// ClearAll returns an empty selection
func ClearAll() []string {
	return []string{}
}

// IsAllFilteredSelected is true when there is at least one filtered id and
// all of them are selected.
func IsAllFilteredSelected(filteredIDs, selection []string) bool {
	if len(filteredIDs) == 0 {
		return false
	}
	selected := toSet(selection)
	for _, id := range filteredIDs {
		if _, ok := selected[id]; !ok {
			return false
		}
	}
	return true
}

// Normalize removes duplicate ids, keeping first occurrences
func Normalize(selection []string) []string {
	return SelectAllFiltered(selection, nil)
}

// Diff reports which ids were added and removed going from before to after
func Diff(before, after []string) (added, removed []string) {
	prev := toSet(before)
	next := toSet(after)
	for _, id := range after {
		if _, ok := prev[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if _, ok := next[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// Index maps ids to items for resolution
func Index(catalog []domain.Item) map[string]domain.Item {
	index := make(map[string]domain.Item, len(catalog))
	for _, item := range catalog {
		index[item.ID] = item
	}
	return index
}

// Resolve returns the selected items that exist in the index, in selection
// order, stopping after limit items when limit > 0. Unresolvable ids are
// skipped for display only.
func Resolve(selection []string, index map[string]domain.Item, limit int) []domain.Item {
	resolved := make([]domain.Item, 0, min(len(selection), max(limit, 0)))
	for _, id := range selection {
		if limit > 0 && len(resolved) >= limit {
			break
		}
		if item, ok := index[id]; ok {
			resolved = append(resolved, item)
		}
	}
	return resolved
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
