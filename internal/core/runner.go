// Package core exposes the executable index and completion engine to hosts:
// trigger reindexing, answer queries, run candidate actions.
package core

import (
	"fmt"
	"log"

	"pathrun/internal/completion"
	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/index"
	"pathrun/internal/indexer"
	"pathrun/internal/launcher"
)

// Runner composes the snapshot store, the background index service and
// the completion engine
type Runner struct {
	bus      eventbus.EventBus
	store    *index.Store
	indexer  indexer.IndexService
	engine   *completion.Engine
	launcher launcher.Launcher
}

// Options configures a Runner
type Options struct {
	MaxResults int
	Launcher   launcher.Launcher
}

// New creates a runner with an empty index
func New(bus eventbus.EventBus, opts Options) *Runner {
	store := index.NewStore()
	return &Runner{
		bus:      bus,
		store:    store,
		indexer:  indexer.NewIndexService(bus, store),
		engine:   completion.NewEngine(store, opts.MaxResults),
		launcher: opts.Launcher,
	}
}

// Reindex supersedes any in-flight scan with one over paths
func (r *Runner) Reindex(paths domain.SearchPath) {
	r.indexer.Reindex(paths)
}

// WaitIndexed blocks until the latest requested scan has finished
func (r *Runner) WaitIndexed() {
	r.indexer.Wait()
}

// Complete answers query against the currently published snapshot
func (r *Runner) Complete(query string) completion.Result {
	return r.engine.Complete(query)
}

// CandidateActions returns the fixed action set for c
func (r *Runner) CandidateActions(c completion.Candidate) []completion.Action {
	return completion.CandidateActions(c)
}

// Snapshot returns the currently published index
func (r *Runner) Snapshot() *index.Snapshot {
	return r.store.Load()
}

// Status reports the latest index run
func (r *Runner) Status() domain.IndexStatus {
	return r.indexer.Status()
}

// Run performs action through the launcher
func (r *Runner) Run(action completion.Action) error {
	if r.launcher == nil {
		return fmt.Errorf("no launcher configured")
	}
	if err := launcher.Dispatch(r.launcher, action); err != nil {
		log.Printf("Failed to run %q: %v", action.CommandLine, err)
		r.publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to run '%s'", action.CommandLine),
			Err:     err,
		})
		return err
	}
	r.publish(eventbus.CommandLaunchedEvent{ActionID: action.ID, CommandLine: action.CommandLine})
	return nil
}

func (r *Runner) publish(e eventbus.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}

// Close stops background indexing
func (r *Runner) Close() {
	r.indexer.Stop()
}
