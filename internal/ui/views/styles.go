package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Counter     lipgloss.Style
	Question    lipgloss.Style
	Banner      lipgloss.Style
	OutOfStock  lipgloss.Style
	InStock     lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldFocus  lipgloss.Style
	BlockHeader lipgloss.Style
	Affordance  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Question:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Banner:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		OutOfStock:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		InStock:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		FieldLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		FieldFocus:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		BlockHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Affordance:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
}
