package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	ScrollThumb  lipgloss.Style
	Highlight    lipgloss.Style
	Header       lipgloss.Style
	HeaderFull   lipgloss.Style
	CursorBg     lipgloss.Style
	Checked      lipgloss.Style
	Count        lipgloss.Style
	Placeholder  lipgloss.Style
	Preview      lipgloss.Style
	StatusError  lipgloss.Style
	StatusAction lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollThumb:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		HeaderFull:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Background(lipgloss.Color("240")),
		CursorBg:     lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Checked:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Count:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Preview:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusAction: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}
