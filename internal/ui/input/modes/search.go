package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"advselect/internal/ui/input/types"
)

// SearchMode filters the catalog as the user types
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
