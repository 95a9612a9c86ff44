package completion

import "fmt"

// ActionKind enumerates the fixed set of things a candidate can do
type ActionKind int

const (
	// RunInTerminal runs the command in a terminal that stays open afterwards
	RunInTerminal ActionKind = iota
	// RunInTerminalAndClose runs the command in a terminal closed on exit
	RunInTerminalAndClose
	// RunInBackground runs the command detached, without a terminal
	RunInBackground
)

// ID returns the stable short identifier of the kind
func (k ActionKind) ID() string {
	switch k {
	case RunInTerminal:
		return "r"
	case RunInTerminalAndClose:
		return "rc"
	case RunInBackground:
		return "rb"
	default:
		return "unknown"
	}
}

// Label returns the user-facing description of the kind
func (k ActionKind) Label() string {
	switch k {
	case RunInTerminal:
		return "Run in terminal"
	case RunInTerminalAndClose:
		return "Run in terminal and close on exit"
	case RunInBackground:
		return "Run in background (without terminal)"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// actionKinds is the presentation order of every candidate's actions
var actionKinds = []ActionKind{RunInTerminal, RunInTerminalAndClose, RunInBackground}

// Action binds an action kind to the exact string handed to the launcher
type Action struct {
	Kind        ActionKind
	ID          string
	Label       string
	CommandLine string
}

// BuildActions returns the actions for a command line in their fixed order.
// The interactive terminal action drops into the user's shell once the
// command exits so its output stays readable.
func BuildActions(commandLine string) []Action {
	actions := make([]Action, 0, len(actionKinds))
	for _, k := range actionKinds {
		line := commandLine
		if k == RunInTerminal {
			line = commandLine + " ; exec $SHELL"
		}
		actions = append(actions, Action{
			Kind:        k,
			ID:          k.ID(),
			Label:       k.Label(),
			CommandLine: line,
		})
	}
	return actions
}

// CandidateActions returns the actions offered for c
func CandidateActions(c Candidate) []Action {
	return BuildActions(c.CommandLine)
}
