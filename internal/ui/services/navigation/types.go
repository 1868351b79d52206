package navigation

// State holds all navigation-related state
type State struct {
	Path             string // mirrors the router
	Expanded         string // open menu group, "" when none
	SidebarCollapsed bool
}

// Link is a sidebar entry that navigates somewhere
type Link struct {
	Label string
	Path  string
	Icon  string
}

// Group is a collapsible sidebar section
type Group struct {
	Name  string
	Label string
	Icon  string
	Links []Link
}

// MenuEntry is one top-level sidebar entry: either a Link or a Group
type MenuEntry struct {
	Link  *Link
	Group *Group
}

// Menu is the ordered sidebar definition
type Menu []MenuEntry

// Group returns the group with the given name
func (m Menu) Group(name string) (*Group, bool) {
	for _, e := range m {
		if e.Group != nil && e.Group.Name == name {
			return e.Group, true
		}
	}
	return nil, false
}

// Links returns every link in menu order, including those inside groups
func (m Menu) Links() []Link {
	var links []Link
	for _, e := range m {
		switch {
		case e.Link != nil:
			links = append(links, *e.Link)
		case e.Group != nil:
			links = append(links, e.Group.Links...)
		}
	}
	return links
}

// Route maps a path (and everything below it) to a page title
type Route struct {
	Path  string
	Label string
}

// RouteTable is checked top to bottom; the first matching route wins
type RouteTable struct {
	Routes  []Route
	Default string
}
