package navigation

import (
	"log"

	"github.com/agnivade/levenshtein"

	"procura/internal/eventbus"
	"procura/internal/logic"
)

// Service tracks the active route, the open menu group and the sidebar state
type Service struct {
	state  *State
	menu   Menu
	routes RouteTable
	router logic.Router
	bus    eventbus.EventBus
}

// NewService creates a navigation service. The initial state has the sidebar
// expanded and no group open, whatever the router's starting path is.
func NewService(bus eventbus.EventBus, router logic.Router, menu Menu, routes RouteTable) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	for _, r := range routes.Shadowed() {
		log.Printf("Navigation: route %q (%s) is shadowed by an earlier route", r.Path, r.Label)
	}
	return &Service{
		state: &State{
			Path: router.CurrentPath(),
		},
		menu:   menu,
		routes: routes,
		router: router,
		bus:    bus,
	}
}

// State returns a copy of the current navigation state
func (s *Service) State() State {
	return *s.state
}

// Menu returns the sidebar definition
func (s *Service) Menu() Menu {
	return s.menu
}

// Path returns the current route path
func (s *Service) Path() string {
	return s.state.Path
}

// Expanded returns the open group name, "" if none
func (s *Service) Expanded() string {
	return s.state.Expanded
}

// IsExpanded checks if a group is the open one
func (s *Service) IsExpanded(group string) bool {
	return group != "" && s.state.Expanded == group
}

// SidebarCollapsed reports whether the sidebar is collapsed
func (s *Service) SidebarCollapsed() bool {
	return s.state.SidebarCollapsed
}

// Toggle closes group if it is open, otherwise opens it and closes any other.
// Unknown group names are ignored.
func (s *Service) Toggle(group string) {
	if _, ok := s.menu.Group(group); !ok {
		log.Printf("Navigation: ignoring toggle of unknown group %q", group)
		return
	}

	if s.state.Expanded == group {
		s.state.Expanded = ""
	} else {
		s.state.Expanded = group
	}

	s.bus.Publish(eventbus.MenuGroupToggledEvent{
		Group:    group,
		Expanded: s.state.Expanded,
	})
}

// ToggleSidebar flips between the collapsed and expanded sidebar
func (s *Service) ToggleSidebar() {
	s.state.SidebarCollapsed = !s.state.SidebarCollapsed
	s.bus.Publish(eventbus.SidebarToggledEvent{Collapsed: s.state.SidebarCollapsed})
}

// SetSidebarCollapsed sets the sidebar state without publishing, used at startup
func (s *Service) SetSidebarCollapsed(collapsed bool) {
	s.state.SidebarCollapsed = collapsed
}

// IsActive reports whether candidate is the current route or one of its parents
func (s *Service) IsActive(candidate string) bool {
	return IsActivePath(s.state.Path, candidate)
}

// LabelFor returns the page title of path
func (s *Service) LabelFor(path string) string {
	return s.routes.LabelFor(path)
}

// Label returns the page title of the current route
func (s *Service) Label() string {
	return s.routes.LabelFor(s.state.Path)
}

// Known reports whether path matches an entry of the route table
func (s *Service) Known(path string) bool {
	_, ok := s.routes.Lookup(logic.NormalizePath(path))
	return ok
}

// Navigate asks the router to move to path and syncs the state
func (s *Service) Navigate(path string) {
	s.router.Navigate(path)
	s.SyncPath()
}

// Back returns to the previous route when the router keeps history
func (s *Service) Back() bool {
	b, ok := s.router.(interface{ Back() bool })
	if !ok || !b.Back() {
		return false
	}
	s.SyncPath()
	return true
}

// SyncPath re-reads the router's path. When the route lives inside a menu
// group, that group becomes the open one.
func (s *Service) SyncPath() {
	path := s.router.CurrentPath()
	if path == s.state.Path {
		return
	}

	from := s.state.Path
	s.state.Path = path

	if group := s.GroupOf(path); group != "" && group != s.state.Expanded {
		s.state.Expanded = group
		s.bus.Publish(eventbus.MenuGroupToggledEvent{Group: group, Expanded: group})
	}

	s.bus.Publish(eventbus.RouteChangedEvent{
		From:  from,
		To:    path,
		Label: s.routes.LabelFor(path),
	})
}

// GroupOf returns the menu group holding the link active for path, "" if none.
// The most specific link wins.
func (s *Service) GroupOf(path string) string {
	best, bestLen := "", -1
	for _, e := range s.menu {
		if e.Group == nil {
			continue
		}
		for _, l := range e.Group.Links {
			if IsActivePath(path, l.Path) && len(l.Path) > bestLen {
				best, bestLen = e.Group.Name, len(l.Path)
			}
		}
	}
	return best
}

// Suggest returns the menu path closest to an unknown path
func (s *Service) Suggest(path string) (string, bool) {
	path = logic.NormalizePath(path)
	best, bestDist := "", -1
	for _, l := range s.menu.Links() {
		d := levenshtein.ComputeDistance(path, l.Path)
		if bestDist < 0 || d < bestDist {
			best, bestDist = l.Path, d
		}
	}
	// Only suggest something reasonably close
	if best == "" || bestDist > len(best)/2 {
		return "", false
	}
	return best, true
}
