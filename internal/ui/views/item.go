package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"advselect/internal/domain"
)

const (
	itemIndent = 2
	checkboxW  = 4 // "[x] "
)

// ItemRenderer handles rendering of item rows
type ItemRenderer struct {
	styles *Styles
}

// NewItemRenderer creates a new item renderer
func NewItemRenderer(styles *Styles) *ItemRenderer {
	return &ItemRenderer{
		styles: styles,
	}
}

// RenderItem renders one option line: indent, checkbox and the label,
// truncated to width. The cursor row is padded so its background spans
// the whole line.
func (r *ItemRenderer) RenderItem(item domain.Item, isCursor, isChecked bool, query string, width int) string {
	base := lipgloss.NewStyle()
	if isCursor {
		base = r.styles.CursorBg
	}

	box := "[ ]"
	boxStyle := base
	if isChecked {
		box = "[x]"
		boxStyle = r.styles.Checked.Inherit(base)
	}

	label := item.Label
	if width > 0 {
		label = runewidth.Truncate(label, max(1, width-itemIndent-checkboxW), "…")
	}

	line := base.Render(strings.Repeat(" ", itemIndent)) +
		boxStyle.Render(box) +
		base.Render(" ") +
		highlightMatch(label, query, r.styles.Highlight.Inherit(base), base)

	if isCursor && width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += base.Render(strings.Repeat(" ", width-lineLen))
		}
	}
	return line
}
