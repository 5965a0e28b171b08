package viewmodels

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advselect/internal/config"
	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/ui/state"
)

func TestBuildViewState_GroupCounts(t *testing.T) {
	catalog := []domain.Item{
		{ID: "1", Label: "One", Group: "A"},
		{ID: "2", Label: "Two", Group: "B"},
		{ID: "3", Label: "Three", Group: "A"},
	}
	opts := engine.Options{RowHeight: 1, ViewportHeight: 10, Overscan: 1}
	session, err := engine.NewSession(opts, catalog, nil)
	require.NoError(t, err)

	selection := []string{"3", "ghost"}
	view := session.Evaluate(selection)

	appState := state.NewAppState()
	appState.Cursor = 1
	vm := NewViewModel(appState, config.DefaultConfig(), textinput.New())
	vm.SetDimensions(80, 24)

	vs := vm.BuildViewState(view, session.Resolve(selection, 20), len(catalog))
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, vs.GroupCounts)
	assert.Equal(t, map[string]int{"A": 1}, vs.GroupSelected)
	assert.Equal(t, []string{"Three"}, vs.Preview)
	assert.Equal(t, 2, vs.SelectedCount, "unknown ids still count")
	assert.Equal(t, 3, vs.FilteredCount)
	assert.Equal(t, 5, vs.TotalRows)
	assert.Equal(t, "Nothing selected", vs.Placeholder)
	assert.Empty(t, vs.InputMode)
}

func TestInputTransformer(t *testing.T) {
	ti := textinput.New()
	ti.SetValue("dev")
	it := NewInputTransformer(ti)
	assert.Empty(t, it.GetInputText())

	it.SetMode(InputModeSearch, "Search: ")
	assert.Equal(t, "search", it.GetInputModeString())
	assert.Contains(t, it.GetInputText(), "Search: ")
	assert.Contains(t, it.GetInputText(), "dev")
}
