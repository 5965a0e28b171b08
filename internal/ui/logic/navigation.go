package logic

import (
	"advselect/internal/domain"
	"advselect/internal/engine"
)

// Navigator moves the cursor over a row list. Header rows are never a
// cursor target; a cursor of -1 means there is nothing to point at.
type Navigator struct {
	rows     []domain.Row
	pageSize int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{pageSize: 1}
}

// UpdateState updates the navigator's rows and page size
func (n *Navigator) UpdateState(rows []domain.Row, pageSize int) {
	n.rows = rows
	n.pageSize = max(1, pageSize)
}

// First returns the first item row
func (n *Navigator) First() int {
	return engine.NextItemRow(n.rows, 0, 1)
}

// Last returns the last item row
func (n *Navigator) Last() int {
	return engine.NextItemRow(n.rows, len(n.rows)-1, -1)
}

// Up returns the previous item row, or cursor when already at the top
func (n *Navigator) Up(cursor int) int {
	if i := engine.NextItemRow(n.rows, cursor-1, -1); i >= 0 {
		return i
	}
	return n.Clamp(cursor)
}

// Down returns the next item row, or cursor when already at the bottom
func (n *Navigator) Down(cursor int) int {
	if i := engine.NextItemRow(n.rows, cursor+1, 1); i >= 0 {
		return i
	}
	return n.Clamp(cursor)
}

// PageUp moves the cursor one page towards the top
func (n *Navigator) PageUp(cursor int) int {
	target := max(0, cursor-n.pageSize)
	if i := engine.NextItemRow(n.rows, target, -1); i >= 0 {
		return i
	}
	return n.First()
}

// PageDown moves the cursor one page towards the bottom
func (n *Navigator) PageDown(cursor int) int {
	target := min(len(n.rows)-1, cursor+n.pageSize)
	if i := engine.NextItemRow(n.rows, target, 1); i >= 0 {
		return i
	}
	return n.Last()
}

// Clamp moves cursor onto the nearest item row at or below it, falling
// back to the nearest one above. Used after the row list changes.
func (n *Navigator) Clamp(cursor int) int {
	if len(n.rows) == 0 {
		return -1
	}
	cursor = min(max(cursor, 0), len(n.rows)-1)
	if i := engine.NextItemRow(n.rows, cursor, 1); i >= 0 {
		return i
	}
	return engine.NextItemRow(n.rows, cursor, -1)
}
