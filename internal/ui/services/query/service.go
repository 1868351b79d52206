package query

import (
	"procura/internal/ui/services/navigation"
)

// Service answers questions about the sidebar rows for the current navigation state
type Service struct {
	nav *navigation.Service
}

// NewService creates a new query service
func NewService(nav *navigation.Service) *Service {
	return &Service{nav: nav}
}

// Rows returns the visible sidebar rows in display order. Links of closed
// groups are hidden, and a collapsed sidebar shows only top-level entries.
func (s *Service) Rows() []IndexInfo {
	var rows []IndexInfo
	collapsed := s.nav.SidebarCollapsed()

	for _, entry := range s.nav.Menu() {
		switch {
		case entry.Link != nil:
			rows = append(rows, IndexInfo{
				Type:   IndexTypeLink,
				Label:  entry.Link.Label,
				Icon:   entry.Link.Icon,
				Path:   entry.Link.Path,
				Active: s.nav.IsActive(entry.Link.Path),
			})

		case entry.Group != nil:
			g := entry.Group
			expanded := s.nav.IsExpanded(g.Name)
			rows = append(rows, IndexInfo{
				Type:      IndexTypeGroup,
				GroupName: g.Name,
				Label:     g.Label,
				Icon:      g.Icon,
				Expanded:  expanded,
				Active:    s.groupActive(g),
			})
			if !expanded || collapsed {
				continue
			}
			for _, l := range g.Links {
				rows = append(rows, IndexInfo{
					Type:      IndexTypeLink,
					GroupName: g.Name,
					Label:     l.Label,
					Icon:      l.Icon,
					Path:      l.Path,
					Active:    s.linkActive(g, l),
					Nested:    true,
				})
			}
		}
	}
	return rows
}

// GetMaxIndex returns the maximum selectable index
func (s *Service) GetMaxIndex() int {
	if n := len(s.Rows()); n > 0 {
		return n - 1
	}
	return 0
}

// GetIndexInfo returns information about what's at a specific index
func (s *Service) GetIndexInfo(index int) *IndexInfo {
	rows := s.Rows()
	if index < 0 || index >= len(rows) {
		return nil
	}
	return &rows[index]
}

// IndexOfActive returns the row of the active link, or of its group header
// when the group is closed. -1 when nothing is active.
func (s *Service) IndexOfActive() int {
	fallback := -1
	for i, r := range s.Rows() {
		if !r.Active {
			continue
		}
		if r.Type == IndexTypeLink {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

func (s *Service) groupActive(g *navigation.Group) bool {
	for _, l := range g.Links {
		if s.nav.IsActive(l.Path) {
			return true
		}
	}
	return false
}

// linkActive highlights only the most specific active link of a group, so
// "/reports" is not lit while a report below it is open.
func (s *Service) linkActive(g *navigation.Group, link navigation.Link) bool {
	if !s.nav.IsActive(link.Path) {
		return false
	}
	for _, other := range g.Links {
		if len(other.Path) > len(link.Path) && s.nav.IsActive(other.Path) {
			return false
		}
	}
	return true
}
