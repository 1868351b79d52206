package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"procura/internal/ui/services/query"
)

// CollapsedWidth is the sidebar width when only icons are shown
const CollapsedWidth = 4

// SidebarState is what the sidebar renderer needs
type SidebarState struct {
	Rows      []query.IndexInfo
	Cursor    int
	Focused   bool
	Collapsed bool
	Width     int
	Height    int
}

// RenderSidebar draws the navigation menu
func (r *Renderer) RenderSidebar(s SidebarState) string {
	width := s.Width
	if s.Collapsed {
		width = CollapsedWidth
	}

	lines := make([]string, 0, len(s.Rows))
	for i, row := range s.Rows {
		line := r.sidebarLine(row, s.Collapsed)
		style := lipgloss.NewStyle()
		if row.Active {
			style = r.styles.SidebarActive
		} else if row.Type == query.IndexTypeGroup {
			style = r.styles.SidebarGroup
		}
		if s.Focused && i == s.Cursor {
			style = style.Inherit(r.styles.SelectionBg)
		}
		lines = append(lines, style.Width(width).MaxWidth(width).Render(line))
	}

	box := r.styles.Sidebar
	if s.Focused {
		box = r.styles.SidebarFocus
	}
	if s.Height > 0 {
		box = box.Height(s.Height)
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) sidebarLine(row query.IndexInfo, collapsed bool) string {
	icon := row.Icon
	if icon == "" {
		icon = "•"
	}
	if collapsed {
		return " " + icon
	}

	switch {
	case row.Type == query.IndexTypeGroup && row.Expanded:
		return "▼ " + row.Label
	case row.Type == query.IndexTypeGroup:
		return "▶ " + row.Label
	case row.Nested:
		return "   " + row.Label
	default:
		return icon + " " + row.Label
	}
}
