package ui

import (
	"pathrun/internal/completion"
	"pathrun/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// launchResultMsg reports the outcome of running an action
type launchResultMsg struct {
	action completion.Action
	err    error
}

// pagerClosedMsg is sent when the pager returns control
type pagerClosedMsg struct {
	err error
}
