package ui

import (
	"procura/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	kind string // "help" or "report"
	path string // route the content came from
	err  error
}

const (
	pagerHelp   = "help"
	pagerReport = "report"
)
