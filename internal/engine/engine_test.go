package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advselect/internal/domain"
)

func newTestSession(t *testing.T, n int, cache *Cache) *Session {
	t.Helper()
	s, err := NewSession(DefaultOptions(), makeCatalog(n), cache)
	require.NoError(t, err)
	return s
}

func TestNewSession_RejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		field string
	}{
		{"ZeroRowHeight", Options{RowHeight: 0, ViewportHeight: 240}, "row_height"},
		{"NegativeViewport", Options{RowHeight: 36, ViewportHeight: -1}, "viewport_height"},
		{"NegativeOverscan", Options{RowHeight: 36, ViewportHeight: 240, Overscan: -2}, "overscan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.opts, nil, nil)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSession_EvaluateDefaults(t *testing.T) {
	s := newTestSession(t, 128, nil)

	view := s.Evaluate(nil)
	assert.Len(t, view.Filtered, 128)
	assert.Len(t, view.Rows, 128+len(testGroups))
	assert.Equal(t, 0, view.Window.StartIndex)
	assert.Equal(t, 19, view.Window.EndIndex)
	assert.Len(t, view.VisibleRows, 19)
	assert.False(t, view.AllFilteredSelected)
	assert.Equal(t, 0, view.SelectedCount)
}

func TestSession_SetQueryResetsScroll(t *testing.T) {
	s := newTestSession(t, 128, nil)
	s.SetScrollTop(3000)
	require.Equal(t, 3000, s.ScrollTop())

	assert.True(t, s.SetQuery("devops"))
	assert.Equal(t, 0, s.ScrollTop())
	assert.Equal(t, "devops", s.Query())

	s.SetScrollTop(72)
	assert.False(t, s.SetQuery("devops"))
	assert.Equal(t, 72, s.ScrollTop())

	view := s.Evaluate(nil)
	for _, item := range view.Filtered {
		assert.Equal(t, "DevOps", item.Group)
	}
	assert.Equal(t, "group-DevOps", view.Rows[0].Key())
}

func TestSession_ScrollIsClampedWhenWindowing(t *testing.T) {
	s := newTestSession(t, 128, nil)
	s.SetScrollTop(1_000_000)

	view := s.Evaluate(nil)
	assert.LessOrEqual(t, view.Window.EndIndex, len(view.Rows))
	assert.Equal(t, len(view.Rows)*36, view.ScrollTop)
	assert.Equal(t, len(view.Rows)*36, view.Window.TotalHeight())
}

func TestSession_ScrollBy(t *testing.T) {
	s := newTestSession(t, 10, nil)
	rows := len(s.Evaluate(nil).Rows)

	s.ScrollBy(-100)
	assert.Equal(t, 0, s.ScrollTop())

	s.ScrollBy(1_000_000)
	assert.Equal(t, MaxScrollTop(rows, 36, 240), s.ScrollTop())
}

func TestSession_ReplaceCatalogRevalidatesScroll(t *testing.T) {
	s := newTestSession(t, 1000, nil)
	s.SetScrollTop(30000)

	s.ReplaceCatalog(makeCatalog(8))
	rows := len(s.Evaluate(nil).Rows)
	assert.LessOrEqual(t, s.ScrollTop(), rows*36)

	view := s.Evaluate(nil)
	assert.LessOrEqual(t, view.Window.EndIndex, rows)
}

func TestSession_SelectionRoundTrip(t *testing.T) {
	s := newTestSession(t, 40, nil)
	var sel []string

	sel = s.Toggle(sel, "item-2")
	assert.Equal(t, []string{"item-2"}, sel)

	s.SetQuery("backend")
	filtered := s.FilteredIDs()
	require.NotEmpty(t, filtered)

	sel = s.ToggleAllFiltered(sel)
	view := s.Evaluate(sel)
	assert.True(t, view.AllFilteredSelected)
	assert.Equal(t, 1+len(filtered), view.SelectedCount)
	assert.True(t, view.Selected["item-2"])

	sel = s.ToggleAllFiltered(sel)
	assert.Equal(t, []string{"item-2"}, sel)

	sel = s.SelectAllFiltered(sel)
	sel = s.ClearFiltered(sel)
	assert.Equal(t, []string{"item-2"}, sel)

	assert.Empty(t, s.ClearAll())
}

func TestSession_EmptyFilterNeverAllSelected(t *testing.T) {
	s := newTestSession(t, 10, nil)
	s.SetQuery("no such thing")

	view := s.Evaluate([]string{"item-1", "item-2"})
	assert.Empty(t, view.FilteredIDs)
	assert.Empty(t, view.Rows)
	assert.False(t, view.AllFilteredSelected)

	// select-all on an empty filter changes nothing
	assert.Equal(t, []string{"item-1", "item-2"}, s.ToggleAllFiltered([]string{"item-1", "item-2"}))
}

func TestSession_ResolveSkipsUnknownIDs(t *testing.T) {
	s := newTestSession(t, 10, nil)
	sel := []string{"item-2", "gone", "item-1"}

	items := s.Resolve(sel, 0)
	assert.Equal(t, []string{"item-2", "item-1"}, FilteredIDs(items))

	// the value itself keeps the unknown id
	assert.Equal(t, 3, s.Evaluate(sel).SelectedCount)

	_, ok := s.Lookup("gone")
	assert.False(t, ok)
}

func TestSession_UsesCache(t *testing.T) {
	cache, err := NewCache(8)
	require.NoError(t, err)
	s := newTestSession(t, 50, cache)

	first := s.Evaluate(nil)
	assert.Equal(t, 1, cache.Len())

	second := s.Evaluate(nil)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, rowKeys(first.Rows), rowKeys(second.Rows))

	s.SetQuery("DevOps")
	s.Evaluate(nil)
	s.SetQuery("  devops ")
	s.Evaluate(nil)
	assert.Equal(t, 2, cache.Len(), "normalized queries share an entry")

	s.ReplaceCatalog([]domain.Item{{ID: "solo", Label: "Solo", Group: "DevOps"}})
	view := s.Evaluate(nil)
	assert.Equal(t, []string{"solo"}, view.FilteredIDs)
}

func TestSession_SetViewportHeight(t *testing.T) {
	s := newTestSession(t, 128, nil)

	require.NoError(t, s.SetViewportHeight(72))
	assert.Equal(t, 72, s.Options().ViewportHeight)
	// ceil(72/36) + 2*6
	assert.Equal(t, 14, s.Evaluate(nil).Window.Len())

	err := s.SetViewportHeight(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, 72, s.Options().ViewportHeight, "rejected sizes leave geometry untouched")
}
