package input

import (
	"advselect/internal/engine"
	"advselect/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	View  engine.View
}

// CurrentIndex returns the cursor row
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalRows returns the number of rows, headers included
func (c *ModelContext) TotalRows() int {
	return len(c.View.Rows)
}

// IsOnItem reports whether the cursor points at an item row
func (c *ModelContext) IsOnItem() bool {
	_, ok := engine.ItemAt(c.View.Rows, c.State.Cursor)
	return ok
}

// CurrentItemID returns the id under the cursor, or "" on a header
func (c *ModelContext) CurrentItemID() string {
	item, _ := engine.ItemAt(c.View.Rows, c.State.Cursor)
	return item.ID
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.View.SelectedCount > 0
}

// SelectedCount returns the number of selected ids
func (c *ModelContext) SelectedCount() int {
	return c.View.SelectedCount
}

// AllFilteredSelected reports whether every filtered item is selected
func (c *ModelContext) AllFilteredSelected() bool {
	return c.View.AllFilteredSelected
}

// Query returns the raw query text
func (c *ModelContext) Query() string {
	return c.View.Query
}
