package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Path          lipgloss.Style
	Confirm       lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	Filter        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarFocus  lipgloss.Style
	SidebarActive lipgloss.Style
	SidebarGroup  lipgloss.Style
	SelectionBg   lipgloss.Style
	Tile          lipgloss.Style
	TileValue     lipgloss.Style
	Detail        lipgloss.Style
	Table         table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Path:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Confirm:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("238")).
			PaddingRight(1),
		SidebarFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("99")).
			PaddingRight(1),
		SidebarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // cyan
		SidebarGroup:  lipgloss.NewStyle().Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Tile: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			MarginRight(1),
		TileValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Table:     ts,
	}
}

// StatusColor returns the color for an entity status value
func StatusColor(status string) string {
	switch status {
	case "active", "open", "received", "awarded":
		return "78" // green
	case "ordered", "evaluation", "draft":
		return "214" // yellow
	case "cancelled", "blacklisted", "closed", "inactive", "discontinued":
		return "203" // red
	default:
		return "241"
	}
}
