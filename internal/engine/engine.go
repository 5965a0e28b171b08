// Package engine implements the selection, filtering and row-windowing core
// of the multi-select dropdown. Everything here is synchronous and
// independent of any rendering technology.
package engine

import (
	"github.com/sirupsen/logrus"

	"advselect/internal/domain"
)

// View is one evaluation of the session against a selection snapshot
type View struct {
	Query               string // raw query as typed
	Filtered            []domain.Item
	FilteredIDs         []string
	Rows                []domain.Row
	Window              domain.Window
	VisibleRows         []domain.Row
	ScrollTop           int // effective, clamped offset
	AllFilteredSelected bool
	SelectedCount       int
	Selected            map[string]bool
}

// Session holds the ephemeral UI state of one dropdown: the query text and
// the scroll offset. The selection is never stored here; callers pass it to
// Evaluate and receive replacements from the mutation methods.
type Session struct {
	opts        Options
	catalog     []domain.Item
	index       map[string]domain.Item
	fingerprint uint64
	hashed      bool
	cache       *Cache
	rawQuery    string
	scrollTop   int
	log         *logrus.Entry
}

// NewSession validates opts and creates a session over catalog.
// cache may be nil.
func NewSession(opts Options, catalog []domain.Item, cache *Cache) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		opts:  opts,
		cache: cache,
		log:   logrus.WithField("component", "engine"),
	}
	s.setCatalog(catalog)
	return s, nil
}

// Options returns the session geometry
func (s *Session) Options() Options {
	return s.opts
}

// Catalog returns the current catalog
func (s *Session) Catalog() []domain.Item {
	return s.catalog
}

// Lookup finds a catalog item by id
func (s *Session) Lookup(id string) (domain.Item, bool) {
	item, ok := s.index[id]
	return item, ok
}

// Fingerprint returns the content hash of the current catalog
func (s *Session) Fingerprint() uint64 {
	return s.fingerprint
}

// Query returns the raw query text
func (s *Session) Query() string {
	return s.rawQuery
}

// ScrollTop returns the stored scroll offset
func (s *Session) ScrollTop() int {
	return s.scrollTop
}

// SetQuery updates the query text. Any change resets the scroll offset so a
// shorter row list is never viewed through a stale window.
func (s *Session) SetQuery(query string) bool {
	if query == s.rawQuery {
		return false
	}
	s.rawQuery = query
	s.scrollTop = 0
	return true
}

// SetScrollTop stores a new scroll offset; it is clamped when windowing
func (s *Session) SetScrollTop(scrollTop int) {
	s.scrollTop = max(0, scrollTop)
}

// SetViewportHeight resizes the viewport, e.g. when the terminal changes size
func (s *Session) SetViewportHeight(height int) error {
	opts := s.opts
	opts.ViewportHeight = height
	if err := opts.Validate(); err != nil {
		return err
	}
	s.opts = opts
	return nil
}

// ScrollBy moves the scroll offset by delta, bounded to the scrollable range
func (s *Session) ScrollBy(delta int) {
	d := s.derive()
	limit := MaxScrollTop(len(d.rows), s.opts.RowHeight, s.opts.ViewportHeight)
	s.scrollTop = min(max(0, s.scrollTop+delta), limit)
}

// Reveal scrolls just enough to bring the row at index into view
func (s *Session) Reveal(index int) {
	s.scrollTop = ScrollToReveal(index, s.opts.RowHeight, s.opts.ViewportHeight, s.scrollTop)
}

// ReplaceCatalog swaps in a new catalog and re-validates the scroll offset
// against the new row count. The query is kept.
func (s *Session) ReplaceCatalog(catalog []domain.Item) {
	if s.cache != nil {
		s.cache.Purge()
	}
	s.setCatalog(catalog)

	d := s.derive()
	s.scrollTop = ClampScroll(s.scrollTop, len(d.rows)*s.opts.RowHeight)
	s.log.WithFields(logrus.Fields{
		"items":       len(catalog),
		"rows":        len(d.rows),
		"fingerprint": s.fingerprint,
	}).Info("catalog replaced")
}

// Evaluate derives the rows and window for the current query and scroll
// offset against a selection snapshot.
func (s *Session) Evaluate(selection []string) View {
	d := s.derive()
	win := ComputeWindow(len(d.rows), s.opts.RowHeight, s.opts.ViewportHeight, s.scrollTop, s.opts.Overscan)

	selected := make(map[string]bool, len(selection))
	for _, id := range selection {
		selected[id] = true
	}

	return View{
		Query:               s.rawQuery,
		Filtered:            d.filtered,
		FilteredIDs:         d.filteredIDs,
		Rows:                d.rows,
		Window:              win,
		VisibleRows:         win.Slice(d.rows),
		ScrollTop:           ClampScroll(s.scrollTop, len(d.rows)*s.opts.RowHeight),
		AllFilteredSelected: IsAllFilteredSelected(d.filteredIDs, selection),
		SelectedCount:       len(selected),
		Selected:            selected,
	}
}

// FilteredIDs returns the ids matching the current query
func (s *Session) FilteredIDs() []string {
	return s.derive().filteredIDs
}

// Toggle proposes selection with id flipped
func (s *Session) Toggle(selection []string, id string) []string {
	return Toggle(selection, id)
}

// SelectAllFiltered proposes selection plus every currently filtered id
func (s *Session) SelectAllFiltered(selection []string) []string {
	return SelectAllFiltered(selection, s.FilteredIDs())
}

// ClearFiltered proposes selection minus every currently filtered id
func (s *Session) ClearFiltered(selection []string) []string {
	return ClearFilteredSelection(selection, s.FilteredIDs())
}

// ClearAll proposes an empty selection
func (s *Session) ClearAll() []string {
	return ClearAll()
}

// ToggleAllFiltered clears the filtered ids when they are all selected,
// otherwise selects them all.
func (s *Session) ToggleAllFiltered(selection []string) []string {
	ids := s.FilteredIDs()
	if IsAllFilteredSelected(ids, selection) {
		return ClearFilteredSelection(selection, ids)
	}
	return SelectAllFiltered(selection, ids)
}

// Resolve returns up to limit selected catalog items in selection order
func (s *Session) Resolve(selection []string, limit int) []domain.Item {
	return Resolve(selection, s.index, limit)
}

func (s *Session) setCatalog(catalog []domain.Item) {
	s.catalog = catalog
	s.index = Index(catalog)

	fingerprint, err := Fingerprint(catalog)
	if err != nil {
		s.log.WithError(err).Warn("catalog not cacheable")
		s.hashed = false
		return
	}
	s.fingerprint = fingerprint
	s.hashed = true
}

func (s *Session) derive() derivation {
	query := NormalizeQuery(s.rawQuery)
	if s.cache != nil && s.hashed {
		if d, ok := s.cache.get(s.fingerprint, query); ok {
			return d
		}
	}

	filtered := Filter(s.catalog, query)
	d := derivation{
		filtered:    filtered,
		filteredIDs: FilteredIDs(filtered),
		rows:        BuildRows(filtered),
	}
	if s.cache != nil && s.hashed {
		s.cache.add(s.fingerprint, query, d)
	}
	return d
}
