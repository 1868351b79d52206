package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishIsSynchronousAndOrdered(t *testing.T) {
	b := New()
	var got []string

	b.Subscribe(EventRouteChanged, func(e DomainEvent) {
		got = append(got, "first:"+e.(RouteChangedEvent).To)
	})
	b.Subscribe(EventRouteChanged, func(e DomainEvent) {
		got = append(got, "second:"+e.(RouteChangedEvent).To)
	})

	b.Publish(RouteChangedEvent{From: "/", To: "/vendors"})
	b.Publish(RouteChangedEvent{From: "/vendors", To: "/items"})

	require.Equal(t, []string{
		"first:/vendors", "second:/vendors",
		"first:/items", "second:/items",
	}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	unsub := b.Subscribe(EventSidebarToggled, func(DomainEvent) { calls++ })

	b.Publish(SidebarToggledEvent{Collapsed: true})
	unsub()
	b.Publish(SidebarToggledEvent{Collapsed: false})

	assert.Equal(t, 1, calls)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	b := New()
	delivered := false
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventError, func(DomainEvent) { delivered = true })

	require.NotPanics(t, func() { b.Publish(ErrorEvent{Message: "x"}) })
	assert.True(t, delivered)
}

func TestRecorderOfType(t *testing.T) {
	r := &Recorder{}
	r.Publish(SidebarToggledEvent{Collapsed: true})
	r.Publish(RouteChangedEvent{To: "/items"})
	r.Publish(SidebarToggledEvent{Collapsed: false})

	require.Len(t, r.OfType(EventSidebarToggled), 2)
	require.Len(t, r.OfType(EventRouteChanged), 1)
}
