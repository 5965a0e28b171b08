package engine

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"advselect/internal/domain"
)

// BuildRows interleaves one header per group with that group's items.
// Groups appear in first-appearance order; items keep their relative order.
func BuildRows(filtered []domain.Item) []domain.Row {
	groups := orderedmap.New[string, []domain.Item]()
	for _, item := range filtered {
		members, _ := groups.Get(item.Group)
		groups.Set(item.Group, append(members, item))
	}

	rows := make([]domain.Row, 0, len(filtered)+groups.Len())
	for pair := groups.Oldest(); pair != nil; pair = pair.Next() {
		rows = append(rows, domain.GroupHeader{Group: pair.Key})
		for _, item := range pair.Value {
			rows = append(rows, domain.ItemRow{Item: item})
		}
	}
	return rows
}

// ItemAt returns the item at a row index, if that row is an item row
func ItemAt(rows []domain.Row, index int) (domain.Item, bool) {
	if index < 0 || index >= len(rows) {
		return domain.Item{}, false
	}
	if row, ok := rows[index].(domain.ItemRow); ok {
		return row.Item, true
	}
	return domain.Item{}, false
}

// NextItemRow walks from index in direction step (+1 or -1) and returns the
// first item row found, or -1 if there is none.
func NextItemRow(rows []domain.Row, index, step int) int {
	if step == 0 {
		step = 1
	}
	for i := index; i >= 0 && i < len(rows); i += step {
		if _, ok := rows[i].(domain.ItemRow); ok {
			return i
		}
	}
	return -1
}
