package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventIndexStarted     EventType = "IndexStarted"
	EventIndexCompleted   EventType = "IndexCompleted"
	EventIndexAborted     EventType = "IndexAborted"
	EventReindexRequested EventType = "ReindexRequested"
	EventPathChanged      EventType = "PathChanged"
	EventCommandLaunched  EventType = "CommandLaunched"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// IndexStartedEvent is emitted when a scan of the search path begins
type IndexStartedEvent struct {
	RunID string
	Paths SearchPath
}

func (e IndexStartedEvent) Type() EventType { return EventIndexStarted }

// IndexCompletedEvent is emitted after a completed run published its snapshot
type IndexCompletedEvent struct {
	RunID   string
	Count   int
	Elapsed time.Duration
}

func (e IndexCompletedEvent) Type() EventType { return EventIndexCompleted }

// IndexAbortedEvent is emitted when a run was superseded or stopped
type IndexAbortedEvent struct {
	RunID   string
	Partial int // names collected before the abort, discarded
}

func (e IndexAbortedEvent) Type() EventType { return EventIndexAborted }

// ReindexRequestedEvent is emitted to request a new scan
type ReindexRequestedEvent struct {
	Paths SearchPath
}

func (e ReindexRequestedEvent) Type() EventType { return EventReindexRequested }

// PathChangedEvent is emitted when a watched search-path directory changed
type PathChangedEvent struct {
	Dir string
}

func (e PathChangedEvent) Type() EventType { return EventPathChanged }

// CommandLaunchedEvent is emitted after an action handed a command line to the launcher
type CommandLaunchedEvent struct {
	ActionID    string
	CommandLine string
}

func (e CommandLaunchedEvent) Type() EventType { return EventCommandLaunched }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
