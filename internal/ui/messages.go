package ui

import (
	"formgrid/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerDoneMsg contains the result of a raw record pager session
type pagerDoneMsg struct {
	err error
}

// statusClearMsg clears a transient status message
type statusClearMsg struct{}
