package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advselect/internal/engine"
	"advselect/internal/ui/input/types"
	"advselect/internal/ui/state"
)

func newContext() *ModelContext {
	return &ModelContext{State: state.NewAppState(), View: engine.View{}}
}

func typeRunes(t *testing.T, h *Handler, ctx types.Context, s string) []types.Action {
	t.Helper()
	var all []types.Action
	for _, r := range s {
		actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}, ctx)
		all = append(all, actions...)
	}
	return all
}

func TestHandler_SearchModeReportsEveryEdit(t *testing.T) {
	h := New()
	ctx := newContext()

	_, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, ctx)
	assert.NotNil(t, cmd, "focusing the text box starts the cursor blink")
	require.Equal(t, types.ModeSearch, h.CurrentMode())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "Search: ", h.Prompt())

	actions := typeRunes(t, h, ctx, "db")
	require.Len(t, actions, 2)
	assert.Equal(t, types.UpdateTextAction{Text: "d"}, actions[0])
	assert.Equal(t, types.UpdateTextAction{Text: "db"}, actions[1])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "db", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestHandler_SearchResumesWithCurrentQuery(t *testing.T) {
	h := New()
	ctx := newContext()
	ctx.View.Query = "back"

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, ctx)
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "back", h.TextInput().Value())

	actions := typeRunes(t, h, ctx, "e")
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "backe"}}, actions)
}

func TestHandler_EscCancelsSearch(t *testing.T) {
	h := New()
	ctx := newContext()

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}}, ctx)
	typeRunes(t, h, ctx, "x")

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelTextAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHandler_NormalModeIgnoresUnboundKeys(t *testing.T) {
	h := New()
	actions, cmd := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, newContext())
	assert.Nil(t, actions)
	assert.Nil(t, cmd)
}
