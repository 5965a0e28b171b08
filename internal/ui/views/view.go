package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"advselect/internal/domain"
)

// ChromeHeight is the number of terminal lines the frame around the row
// list occupies: container padding, title, input, status, preview and help.
const ChromeHeight = 9

// horizontal padding of the main container plus the scrollbar column
const listInset = 4 + 2

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Rows materialized by the window, starting at Window.StartIndex
	Rows           []domain.Row
	Window         domain.Window
	ScrollTop      int
	ViewportHeight int
	TotalRows      int
	Cursor         int

	Selected      map[string]bool
	GroupCounts   map[string]int
	GroupSelected map[string]int

	Query     string
	InputMode string
	TextInput string

	StatusMessage string
	StatusIsError bool
	Loading       bool
	LoadingSource string

	SelectedCount       int
	FilteredCount       int
	TotalCount          int
	AllFilteredSelected bool
	Placeholder         string
	Preview             []string
}

// ListWidth returns the columns available to a row
func (s ViewState) ListWidth() int {
	return max(10, s.Width-listInset)
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	itemRender  *ItemRenderer
	groupRender *GroupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		itemRender:  NewItemRenderer(styles),
		groupRender: NewGroupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	// Input line is always reserved so the list does not jump
	if state.InputMode != "" {
		content.WriteString(state.TextInput)
	}
	content.WriteString("\n")

	content.WriteString(r.renderList(state))
	content.WriteString("\n")
	content.WriteString(r.renderStatus(state))
	content.WriteString("\n")
	content.WriteString(r.renderPreview(state))
	content.WriteString("\n\n")
	content.WriteString(r.styles.Help.Render("Press ? for help"))

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("advselect")

	var indicators []string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%s Loading %s", spinner[frame], state.LoadingSource)))
	}
	if state.Query != "" && state.InputMode == "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.Query)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding > 0 {
		return logo + strings.Repeat(" ", padding) + right
	}
	return logo + "  " + right
}

// renderList draws the rows that fall inside the viewport. The window
// carries overscan rows on both sides; those are skipped here and the
// padding geometry drives the scrollbar instead.
func (r *Renderer) renderList(state ViewState) string {
	rowHeight := max(1, state.Window.RowHeight)
	viewportRows := max(1, state.ViewportHeight/rowHeight)
	width := state.ListWidth()

	lines := make([]string, 0, viewportRows)
	if state.TotalRows == 0 {
		lines = append(lines, r.styles.Dim.Render(r.emptyMessage(state)))
	}

	firstRow := state.ScrollTop / rowHeight
	skip := max(0, firstRow-state.Window.StartIndex)
	for k := skip; k < len(state.Rows) && len(lines) < viewportRows; k++ {
		index := state.Window.StartIndex + k
		switch row := state.Rows[k].(type) {
		case domain.GroupHeader:
			lines = append(lines, r.groupRender.RenderGroupHeader(
				row.Group,
				state.GroupCounts[row.Group],
				state.GroupSelected[row.Group],
				state.Query,
				width,
			))
		case domain.ItemRow:
			lines = append(lines, r.itemRender.RenderItem(
				row.Item,
				index == state.Cursor,
				state.Selected[row.Item.ID],
				state.Query,
				width,
			))
		}
	}
	for len(lines) < viewportRows {
		lines = append(lines, "")
	}

	bar := renderScrollbar(r.styles, viewportRows, state.TotalRows, firstRow)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padRight(line, width) + " " + bar[i]
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) emptyMessage(state ViewState) string {
	switch {
	case state.Loading:
		return "Loading options..."
	case state.Query != "":
		return fmt.Sprintf("No options match %q", state.Query)
	default:
		return "No options"
	}
}

func (r *Renderer) renderStatus(state ViewState) string {
	var parts []string
	if state.SelectedCount == 0 {
		parts = append(parts, r.styles.Placeholder.Render(state.Placeholder))
	} else {
		parts = append(parts, r.styles.Count.Render(humanize.Comma(int64(state.SelectedCount))+" selected"))
	}

	parts = append(parts, r.styles.Status.Render(fmt.Sprintf("%s of %s shown",
		humanize.Comma(int64(state.FilteredCount)), humanize.Comma(int64(state.TotalCount)))))

	if state.FilteredCount > 0 {
		action := "a: select all filtered"
		if state.AllFilteredSelected {
			action = "a: clear filtered"
		}
		parts = append(parts, r.styles.StatusAction.Render(action))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		parts = append(parts, style.Render(state.StatusMessage))
	}

	return strings.Join(parts, r.styles.Dim.Render(" · "))
}

func (r *Renderer) renderPreview(state ViewState) string {
	if len(state.Preview) == 0 {
		return ""
	}
	text := "Selected: " + strings.Join(state.Preview, ", ")
	if rest := state.SelectedCount - len(state.Preview); rest > 0 {
		text += fmt.Sprintf(" (+%s more)", humanize.Comma(int64(rest)))
	}
	return r.styles.Preview.Render(runewidth.Truncate(text, state.ListWidth(), "…"))
}

// renderScrollbar returns one cell per viewport line. The thumb covers the
// viewport's share of the total row count.
func renderScrollbar(styles *Styles, height, totalRows, firstRow int) []string {
	bar := make([]string, height)
	if totalRows <= height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumbSize := max(1, height*height/totalRows)
	thumbStart := min(firstRow*height/totalRows, height-thumbSize)
	for i := range bar {
		if i >= thumbStart && i < thumbStart+thumbSize {
			bar[i] = styles.ScrollThumb.Render("┃")
		} else {
			bar[i] = styles.Scroll.Render("│")
		}
	}
	return bar
}

func padRight(line string, width int) string {
	if w := lipgloss.Width(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
