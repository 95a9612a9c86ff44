package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"pathrun/internal/core"
	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/launcher"
	"pathrun/internal/ui"
	"pathrun/internal/watcher"
)

// forwardedEvents reach the UI as ui.EventMsg
var forwardedEvents = []eventbus.EventType{
	eventbus.EventIndexStarted,
	eventbus.EventIndexCompleted,
	eventbus.EventIndexAborted,
	eventbus.EventError,
}

// runTUI starts the interactive launcher and blocks until it exits
func runTUI(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := a.bus

	runner := core.New(bus, core.Options{
		MaxResults: a.cfg.UISettings.MaxResults,
		Launcher:   launcher.NewExecLauncher(a.cfg.TerminalCommand, a.cfg.Shell),
	})
	defer runner.Close()

	paths := a.searchPath()
	model := ui.NewModel(runner, a.cfg, paths)
	p := tea.NewProgram(model, tea.WithAltScreen())

	for _, t := range forwardedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			p.Send(ui.EventMsg{Event: e})
		})
	}

	if a.cfg.Watch {
		w, err := watcher.New(paths, a.cfg.WatchDebounce(), bus, func(changed domain.SearchPath) {
			log.Printf("Search path changed, reindexing")
			bus.Publish(eventbus.ReindexRequestedEvent{Paths: changed})
		})
		if err != nil {
			log.Printf("Directory watching disabled: %v", err)
		} else {
			log.Printf("Watching %s", strings.Join(w.Watched(), ", "))
			defer w.Close()
		}
	}

	runner.Reindex(paths)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		log.Printf("Starting UI...")
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
		log.Printf("UI exited normally")
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
