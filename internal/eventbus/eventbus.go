package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"procura/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventRouteChanged     = domain.EventRouteChanged
	EventMenuGroupToggled = domain.EventMenuGroupToggled
	EventSidebarToggled   = domain.EventSidebarToggled
	EventFilterChanged    = domain.EventFilterChanged
	EventDeleteRequested  = domain.EventDeleteRequested
	EventDatasetLoaded    = domain.EventDatasetLoaded
	EventReportExported   = domain.EventReportExported
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type RouteChangedEvent = domain.RouteChangedEvent
type MenuGroupToggledEvent = domain.MenuGroupToggledEvent
type SidebarToggledEvent = domain.SidebarToggledEvent
type FilterChangedEvent = domain.FilterChangedEvent
type DeleteRequestedEvent = domain.DeleteRequestedEvent
type DatasetLoadedEvent = domain.DatasetLoadedEvent
type ReportExportedEvent = domain.ReportExportedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run in the publisher's goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventFilterChanged:
		// one per keystroke, too noisy for the log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}

// Recorder collects every published event, for tests and debugging
type Recorder struct {
	mu     sync.Mutex
	Events []DomainEvent
}

func (r *Recorder) Publish(event DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

func (r *Recorder) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}

// OfType returns the recorded events of the given type
func (r *Recorder) OfType(t EventType) []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []DomainEvent
	for _, e := range r.Events {
		if e.Type() == t {
			out = append(out, e)
		}
	}
	return out
}
