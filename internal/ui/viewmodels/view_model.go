package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"advselect/internal/config"
	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/ui/state"
	"advselect/internal/ui/views"
)

// ViewModel transforms engine output and UI state into view-ready data
type ViewModel struct {
	state            *state.AppState
	config           *config.Config
	width            int
	height           int
	statusIsError    bool
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		config:           cfg,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetStatusError marks the status message as an error
func (vm *ViewModel) SetStatusError(isError bool) {
	vm.statusIsError = isError
}

// BuildViewState creates a ViewState for rendering. preview holds the
// resolved selection, already limited by the caller.
func (vm *ViewModel) BuildViewState(view engine.View, preview []domain.Item, totalCount int) views.ViewState {
	groupCounts := make(map[string]int)
	groupSelected := make(map[string]int)
	for _, item := range view.Filtered {
		groupCounts[item.Group]++
		if view.Selected[item.ID] {
			groupSelected[item.Group]++
		}
	}

	labels := make([]string, len(preview))
	for i, item := range preview {
		labels[i] = item.Label
	}

	return views.ViewState{
		Width:               vm.width,
		Height:              vm.height,
		Rows:                view.VisibleRows,
		Window:              view.Window,
		ScrollTop:           view.ScrollTop,
		ViewportHeight:      vm.state.ViewportHeight,
		TotalRows:           len(view.Rows),
		Cursor:              vm.state.Cursor,
		Selected:            view.Selected,
		GroupCounts:         groupCounts,
		GroupSelected:       groupSelected,
		Query:               view.Query,
		InputMode:           vm.inputTransformer.GetInputModeString(),
		TextInput:           vm.inputTransformer.GetInputText(),
		StatusMessage:       vm.state.StatusMessage,
		StatusIsError:       vm.statusIsError,
		Loading:             vm.state.Loading,
		LoadingSource:       vm.state.LoadingSource,
		SelectedCount:       view.SelectedCount,
		FilteredCount:       len(view.Filtered),
		TotalCount:          totalCount,
		AllFilteredSelected: view.AllFilteredSelected,
		Placeholder:         vm.config.UI.Placeholder,
		Preview:             labels,
	}
}
