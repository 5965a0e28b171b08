package domain

// Item represents a single selectable entry in a catalog
type Item struct {
	ID       string   `toml:"id"`
	Label    string   `toml:"label"`
	Group    string   `toml:"group"`
	Keywords []string `toml:"keywords,omitempty"` // extra search terms
}

// Row is a renderable unit: either a group separator or one item.
// The set of row kinds is closed; switch on the concrete type.
type Row interface {
	Key() string
	rowKind()
}

// GroupHeader is a separator row, never selectable
type GroupHeader struct {
	Group string
}

// Key returns a stable identity for the row
func (r GroupHeader) Key() string { return "group-" + r.Group }

func (GroupHeader) rowKind() {}

// ItemRow is a selectable row
type ItemRow struct {
	Item Item
}

// Key returns a stable identity for the row
func (r ItemRow) Key() string { return "item-" + r.Item.ID }

func (ItemRow) rowKind() {}

// Window is the contiguous slice of rows to materialize plus the padding
// that keeps the scroll geometry intact.
type Window struct {
	StartIndex    int
	EndIndex      int
	TopPadding    int
	BottomPadding int
	RowHeight     int
}

// Len returns the number of materialized rows
func (w Window) Len() int {
	return w.EndIndex - w.StartIndex
}

// TotalHeight reconstructs the full content height from the window
func (w Window) TotalHeight() int {
	return w.TopPadding + w.Len()*w.RowHeight + w.BottomPadding
}

// Slice returns the rows covered by the window. Out-of-range windows are
// clipped to the slice so a stale window never panics.
func (w Window) Slice(rows []Row) []Row {
	start, end := w.StartIndex, w.EndIndex
	if end > len(rows) {
		end = len(rows)
	}
	if start > end {
		start = end
	}
	return rows[start:end]
}
