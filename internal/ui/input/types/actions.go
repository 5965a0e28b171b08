package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleAction struct {
	ID string // empty for the item under the cursor
}

func (a ToggleAction) Type() string { return "toggle" }

// ToggleAllFilteredAction selects every filtered item, or clears them when
// they are all selected already
type ToggleAllFilteredAction struct{}

func (a ToggleAllFilteredAction) Type() string { return "toggle_all_filtered" }

type ClearAllAction struct{}

func (a ClearAllAction) Type() string { return "clear_all" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional initial text for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
