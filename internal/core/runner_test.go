package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/launcher"
)

func makeBin(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755))
		require.NoError(t, os.Chmod(p, 0o755))
	}
}

func TestReindexThenComplete(t *testing.T) {
	bin := t.TempDir()
	makeBin(t, bin, "ls", "lsof", "lsblk", "grep")

	r := New(nil, Options{})
	defer r.Close()

	r.Reindex(domain.SearchPath{filepath.Join(bin, "missing"), bin})
	r.WaitIndexed()

	res := r.Complete("ls foo bar")
	require.Len(t, res.Candidates, 4)
	assert.Equal(t, "ls", res.CommonPrefix)
	for _, c := range res.Matches() {
		assert.Equal(t, c.Name+" foo bar", c.CommandLine)
		assert.Equal(t, "ls foo bar", c.Completion)
	}
	assert.Equal(t, "ls foo bar", res.Candidates[3].CommandLine)
	assert.True(t, res.Candidates[3].Fallback)

	assert.Equal(t, 4, r.Snapshot().Len())
	assert.Equal(t, domain.RunCompleted, r.Status().Outcome)
}

func TestCompleteBeforeFirstIndex(t *testing.T) {
	r := New(nil, Options{})
	defer r.Close()

	res := r.Complete("xyz")
	require.Len(t, res.Candidates, 1)
	assert.True(t, res.Candidates[0].Fallback)

	assert.True(t, r.Complete("   ").Empty())
}

func TestReindexPicksUpChanges(t *testing.T) {
	bin := t.TempDir()
	makeBin(t, bin, "alpha")

	r := New(nil, Options{})
	defer r.Close()
	r.Reindex(domain.SearchPath{bin})
	r.WaitIndexed()
	before := r.Snapshot()

	makeBin(t, bin, "beta")
	r.Reindex(domain.SearchPath{bin})
	r.WaitIndexed()

	assert.Equal(t, []string{"alpha"}, before.Names())
	assert.Equal(t, []string{"alpha", "beta"}, r.Snapshot().Names())
}

func TestRunDispatchesAndPublishes(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	launched := make(chan eventbus.CommandLaunchedEvent, 1)
	bus.Subscribe(eventbus.EventCommandLaunched, func(e eventbus.DomainEvent) {
		launched <- e.(eventbus.CommandLaunchedEvent)
	})

	rec := &launcher.Recorder{}
	r := New(bus, Options{Launcher: rec})
	defer r.Close()

	res := r.Complete("htop")
	actions := r.CandidateActions(res.Candidates[0])
	require.Len(t, actions, 3)
	require.NoError(t, r.Run(actions[2]))

	assert.Equal(t, []launcher.Launch{{CommandLine: "htop"}}, rec.Launches())
	select {
	case ev := <-launched:
		assert.Equal(t, "rb", ev.ActionID)
	case <-time.After(2 * time.Second):
		t.Fatal("no launch event")
	}
}

func TestRunFailurePublishesError(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	errs := make(chan eventbus.ErrorEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) { errs <- e.(eventbus.ErrorEvent) })

	rec := &launcher.Recorder{Err: errors.New("no display")}
	r := New(bus, Options{Launcher: rec})
	defer r.Close()

	actions := r.CandidateActions(r.Complete("xclock").Candidates[0])
	err := r.Run(actions[0])
	require.Error(t, err)

	select {
	case ev := <-errs:
		assert.Contains(t, ev.Message, "xclock ; exec $SHELL")
		assert.EqualError(t, ev.Err, "no display")
	case <-time.After(2 * time.Second):
		t.Fatal("no error event")
	}
}

func TestRunWithoutLauncher(t *testing.T) {
	r := New(nil, Options{})
	defer r.Close()

	actions := r.CandidateActions(r.Complete("ls").Candidates[0])
	assert.Error(t, r.Run(actions[0]))
}

func TestMaxResultsOption(t *testing.T) {
	bin := t.TempDir()
	makeBin(t, bin, "ga", "gb", "gc")

	r := New(nil, Options{MaxResults: 1})
	defer r.Close()
	r.Reindex(domain.SearchPath{bin})
	r.WaitIndexed()

	res := r.Complete("g")
	assert.Len(t, res.Matches(), 1)
	assert.Equal(t, "g", res.CommonPrefix)
}
