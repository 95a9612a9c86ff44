// Package launcher hands command lines to the operating system.
package launcher

import (
	"fmt"
	"log"
	"os/exec"
	"strings"

	"pathrun/internal/completion"
)

// Launcher runs fully reconstructed command lines
type Launcher interface {
	RunTerminal(commandLine string) error
	RunDetached(commandLine string) error
}

// ExecLauncher starts commands through a shell, optionally inside a
// terminal emulator
type ExecLauncher struct {
	terminal []string
	shell    string
	start    func(*exec.Cmd) error
}

// NewExecLauncher creates a launcher. terminal is the emulator invocation
// up to the point where a command follows, e.g. ["xterm", "-e"].
func NewExecLauncher(terminal []string, shell string) *ExecLauncher {
	if shell == "" {
		shell = "sh"
	}
	return &ExecLauncher{
		terminal: terminal,
		shell:    shell,
		start:    startAndReap,
	}
}

// RunTerminal runs commandLine inside the configured terminal emulator
func (l *ExecLauncher) RunTerminal(commandLine string) error {
	if len(l.terminal) == 0 {
		return fmt.Errorf("no terminal command configured")
	}
	args := append(append([]string{}, l.terminal[1:]...), l.shell, "-c", commandLine)
	cmd := exec.Command(l.terminal[0], args...)
	return l.launch(cmd)
}

// RunDetached runs commandLine in a new session without a terminal
func (l *ExecLauncher) RunDetached(commandLine string) error {
	cmd := exec.Command(l.shell, "-c", commandLine)
	return l.launch(cmd)
}

func (l *ExecLauncher) launch(cmd *exec.Cmd) error {
	detach(cmd)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", strings.Join(cmd.Args, " "), err)
	}
	log.Printf("Launched %s", strings.Join(cmd.Args, " "))
	return nil
}

// startAndReap starts cmd and collects its exit status in the background
func startAndReap(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("Command %s exited: %v", cmd.Path, err)
		}
	}()
	return nil
}

// Dispatch performs action through l
func Dispatch(l Launcher, action completion.Action) error {
	switch action.Kind {
	case completion.RunInTerminal, completion.RunInTerminalAndClose:
		return l.RunTerminal(action.CommandLine)
	case completion.RunInBackground:
		return l.RunDetached(action.CommandLine)
	default:
		return fmt.Errorf("unknown action %q", action.ID)
	}
}
