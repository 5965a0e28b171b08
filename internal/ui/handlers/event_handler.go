package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"advselect/internal/domain"
	"advselect/internal/eventbus"
	"advselect/internal/ui/state"
)

// TickMsg is a tick message for animations
type TickMsg time.Time

// EventHandler handles domain events and updates state
type EventHandler struct {
	state           *state.AppState
	onCatalogLoaded func(items []domain.Item)
	lastError       bool
}

// NewEventHandler creates a new event handler. onCatalogLoaded swaps the
// catalog into the session and stores.
func NewEventHandler(appState *state.AppState, onCatalogLoaded func(items []domain.Item)) *EventHandler {
	return &EventHandler{
		state:           appState,
		onCatalogLoaded: onCatalogLoaded,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	h.lastError = false

	switch e := event.(type) {
	case eventbus.CatalogLoadingEvent:
		h.state.StartLoading(e.Source)
		// Start the spinner animation
		return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case eventbus.CatalogLoadedEvent:
		if h.onCatalogLoaded != nil {
			h.onCatalogLoaded(e.Items)
		}
		h.state.Loading = false
		h.state.LoadingSource = ""
		h.state.StatusMessage = fmt.Sprintf("Loaded %s options from %s",
			humanize.Comma(int64(len(e.Items))), e.Source)

	case eventbus.SelectionChangedEvent:
		switch {
		case e.Total == 0 && len(e.Removed) > 0:
			h.state.StatusMessage = "Selection cleared"
		case len(e.Added) > 0 && len(e.Removed) == 0:
			h.state.StatusMessage = fmt.Sprintf("Selected %s", humanize.Comma(int64(len(e.Added))))
		case len(e.Removed) > 0 && len(e.Added) == 0:
			h.state.StatusMessage = fmt.Sprintf("Deselected %s", humanize.Comma(int64(len(e.Removed))))
		}

	case eventbus.ConfigLoadedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config loaded from %s", e.Path)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)

	case eventbus.ErrorEvent:
		h.state.Loading = false
		h.state.LoadingSource = ""
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
		h.lastError = true
	}

	return nil
}

// LastWasError reports whether the most recent event was an error
func (h *EventHandler) LastWasError() bool {
	return h.lastError
}
