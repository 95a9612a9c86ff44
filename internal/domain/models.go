package domain

import "time"

// SearchPath is the ordered list of directories scanned for executables
type SearchPath []string

// RunOutcome tags how an index run ended
type RunOutcome int

const (
	RunIdle RunOutcome = iota // no run requested yet
	RunRunning
	RunCompleted
	RunAborted
)

func (o RunOutcome) String() string {
	switch o {
	case RunIdle:
		return "idle"
	case RunRunning:
		return "running"
	case RunCompleted:
		return "completed"
	case RunAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IndexStatus represents the state of the most recent index run
type IndexStatus struct {
	RunID     string
	Outcome   RunOutcome
	Count     int           // executables in the published snapshot
	Elapsed   time.Duration // wall-clock time of the last completed run
	Paths     SearchPath
	UpdatedAt time.Time
}
