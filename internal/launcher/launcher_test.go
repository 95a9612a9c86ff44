package launcher

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathrun/internal/completion"
)

func capturing(l *ExecLauncher) *[]*exec.Cmd {
	var started []*exec.Cmd
	l.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd)
		return nil
	}
	return &started
}

func TestRunTerminalWrapsCommandInShell(t *testing.T) {
	l := NewExecLauncher([]string{"xterm", "-hold", "-e"}, "bash")
	started := capturing(l)

	require.NoError(t, l.RunTerminal("htop -d 5"))

	require.Len(t, *started, 1)
	assert.Equal(t, []string{"xterm", "-hold", "-e", "bash", "-c", "htop -d 5"}, (*started)[0].Args)
}

func TestRunTerminalWithoutTerminalConfigured(t *testing.T) {
	l := NewExecLauncher(nil, "")
	started := capturing(l)

	err := l.RunTerminal("ls")

	require.Error(t, err)
	assert.Empty(t, *started)
}

func TestRunDetachedUsesShell(t *testing.T) {
	l := NewExecLauncher([]string{"xterm", "-e"}, "")
	started := capturing(l)

	require.NoError(t, l.RunDetached("notify-send hi"))

	require.Len(t, *started, 1)
	assert.Equal(t, []string{"sh", "-c", "notify-send hi"}, (*started)[0].Args)
}

func TestLaunchWrapsStartError(t *testing.T) {
	l := NewExecLauncher([]string{"xterm", "-e"}, "sh")
	startErr := errors.New("exec format error")
	l.start = func(*exec.Cmd) error { return startErr }

	err := l.RunDetached("true")

	require.Error(t, err)
	assert.ErrorIs(t, err, startErr)
	assert.Contains(t, err.Error(), "sh -c true")
}

func TestRunDetachedStartsRealProcess(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	l := NewExecLauncher(nil, "sh")

	assert.NoError(t, l.RunDetached("true"))
}

func TestDispatchRoutesActionKinds(t *testing.T) {
	rec := &Recorder{}
	actions := completion.BuildActions("ls -la")

	for _, a := range actions {
		require.NoError(t, Dispatch(rec, a))
	}

	assert.Equal(t, []Launch{
		{Terminal: true, CommandLine: "ls -la ; exec $SHELL"},
		{Terminal: true, CommandLine: "ls -la"},
		{Terminal: false, CommandLine: "ls -la"},
	}, rec.Launches())
}

func TestDispatchUnknownKind(t *testing.T) {
	rec := &Recorder{}

	err := Dispatch(rec, completion.Action{Kind: completion.ActionKind(9), ID: "zz"})

	require.Error(t, err)
	assert.Empty(t, rec.Launches())
}

func TestRecorderReturnsConfiguredError(t *testing.T) {
	rec := &Recorder{Err: errors.New("no display")}

	assert.EqualError(t, rec.RunTerminal("x"), "no display")
	assert.Len(t, rec.Launches(), 1)
}
