package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GroupRenderer handles rendering of group headers
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroupHeader renders a group header. Headers are never the cursor
// target; a group whose visible items are all selected gets a background.
func (g *GroupRenderer) RenderGroupHeader(group string, itemCount, selectedCount int, query string, width int) string {
	style := g.styles.Header
	fullySelected := itemCount > 0 && selectedCount == itemCount
	if fullySelected {
		style = g.styles.HeaderFull
	}

	name := highlightMatch(group, query, g.styles.Highlight.Inherit(style), style)
	counts := fmt.Sprintf(" (%d)", itemCount)
	if selectedCount > 0 {
		counts = fmt.Sprintf(" (%d/%d)", selectedCount, itemCount)
	}
	line := name + style.Render(counts)

	if fullySelected && width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += style.Render(strings.Repeat(" ", width-lineLen))
		}
	}
	return line
}

// highlightMatch renders the first case-insensitive occurrence of query in
// text with highlightStyle and the rest with normalStyle
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	query = strings.ToLower(strings.TrimSpace(query))
	lowerText := strings.ToLower(text)
	// Byte offsets only line up when lower-casing keeps lengths
	if query == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	index := strings.Index(lowerText, query)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}
