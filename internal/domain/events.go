package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRouteChanged     EventType = "RouteChanged"
	EventMenuGroupToggled EventType = "MenuGroupToggled"
	EventSidebarToggled   EventType = "SidebarToggled"
	EventFilterChanged    EventType = "FilterChanged"
	EventDeleteRequested  EventType = "DeleteRequested"
	EventDatasetLoaded    EventType = "DatasetLoaded"
	EventReportExported   EventType = "ReportExported"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RouteChangedEvent is emitted after the current path changes
type RouteChangedEvent struct {
	From  string
	To    string
	Label string
}

func (e RouteChangedEvent) Type() EventType { return EventRouteChanged }

// MenuGroupToggledEvent is emitted when a sidebar group opens or closes.
// Expanded is the group open after the toggle ("" if none).
type MenuGroupToggledEvent struct {
	Group    string
	Expanded string
}

func (e MenuGroupToggledEvent) Type() EventType { return EventMenuGroupToggled }

// SidebarToggledEvent is emitted when the sidebar collapses or expands
type SidebarToggledEvent struct {
	Collapsed bool
}

func (e SidebarToggledEvent) Type() EventType { return EventSidebarToggled }

// FilterChangedEvent is emitted whenever the filter criteria of a page change
type FilterChangedEvent struct {
	Path     string
	Text     string
	Category string
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// DeleteRequestedEvent is emitted when a delete is confirmed. Nothing is written.
type DeleteRequestedEvent struct {
	Path     string
	EntityID string
}

func (e DeleteRequestedEvent) Type() EventType { return EventDeleteRequested }

// DatasetLoadedEvent is emitted once the seed dataset is available
type DatasetLoadedEvent struct {
	Source    string
	Vendors   int
	Items     int
	Purchases int
	Tenders   int
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// ReportExportedEvent is emitted after a report is opened in the pager
type ReportExportedEvent struct {
	Path string
	Err  error
}

func (e ReportExportedEvent) Type() EventType { return EventReportExported }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DataFile  string
	StartPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
