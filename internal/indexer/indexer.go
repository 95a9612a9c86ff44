package indexer

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pathrun/internal/domain"
	"pathrun/internal/eventbus"
	"pathrun/internal/index"
)

// IndexService scans the search path in the background and publishes
// completed results to a snapshot store
type IndexService interface {
	Reindex(paths domain.SearchPath)
	Wait()
	Stop()
	Status() domain.IndexStatus
}

type scanFunc func(ctx context.Context, paths domain.SearchPath) RunResult

// indexService is the concrete implementation
type indexService struct {
	bus   eventbus.EventBus
	store *index.Store
	scan  scanFunc

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{} // closed when the latest run has finished
	stopped    bool
	status     domain.IndexStatus
}

// NewIndexService creates a new index service publishing into store
func NewIndexService(bus eventbus.EventBus, store *index.Store) IndexService {
	return newIndexService(bus, store, Scan)
}

func newIndexService(bus eventbus.EventBus, store *index.Store, scan scanFunc) *indexService {
	s := &indexService{
		bus:   bus,
		store: store,
		scan:  scan,
	}

	if bus != nil {
		bus.Subscribe(eventbus.EventReindexRequested, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ReindexRequestedEvent); ok {
				s.Reindex(event.Paths)
			}
		})
	}

	return s
}

// Reindex cancels any in-flight run and starts a fresh one. It returns
// immediately; the new run begins once its predecessor has unwound.
func (s *indexService) Reindex(paths domain.SearchPath) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if s.cancelFunc != nil {
		s.cancelFunc()
	}

	ctx, cancel := context.WithCancel(context.Background())
	prev := s.done
	done := make(chan struct{})
	s.cancelFunc = cancel
	s.done = done

	id := uuid.NewString()
	s.status.RunID = id
	s.status.Outcome = domain.RunRunning
	s.status.Paths = paths

	go s.run(ctx, cancel, id, paths, prev, done)
}

func (s *indexService) run(ctx context.Context, cancel context.CancelFunc, id string, paths domain.SearchPath, prev, done chan struct{}) {
	defer close(done)
	defer cancel()

	if prev != nil {
		<-prev
	}
	if ctx.Err() != nil {
		s.aborted(RunResult{ID: id, Outcome: domain.RunAborted, Paths: paths})
		return
	}

	log.Printf("Indexing %s", strings.Join(paths, ", "))
	s.publish(eventbus.IndexStartedEvent{RunID: id, Paths: paths})

	res := s.scan(ctx, paths)
	res.ID = id

	// A run superseded after finishing its walk is discarded too
	if res.Outcome != domain.RunCompleted || ctx.Err() != nil {
		s.aborted(res)
		return
	}

	s.store.Publish(res.Snapshot)
	log.Printf("Indexed %d executables [%d ms]", res.Snapshot.Len(), res.Elapsed.Milliseconds())

	s.mu.Lock()
	s.status.Count = res.Snapshot.Len()
	s.status.Elapsed = res.Elapsed
	s.status.UpdatedAt = time.Now()
	if s.done == done {
		s.status.Outcome = domain.RunCompleted
		s.cancelFunc = nil
	}
	s.mu.Unlock()

	s.publish(eventbus.IndexCompletedEvent{RunID: id, Count: res.Snapshot.Len(), Elapsed: res.Elapsed})
}

func (s *indexService) aborted(res RunResult) {
	log.Printf("Index run %s aborted after %d entries", res.ID, res.Partial)

	s.mu.Lock()
	if s.status.RunID == res.ID {
		s.status.Outcome = domain.RunAborted
	}
	s.mu.Unlock()

	s.publish(eventbus.IndexAbortedEvent{RunID: res.ID, Partial: res.Partial})
}

func (s *indexService) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Wait blocks until the most recently requested run has finished
func (s *indexService) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Stop cancels any in-flight run and rejects further requests
func (s *indexService) Stop() {
	s.mu.Lock()
	s.stopped = true
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	s.Wait()
}

// Status returns the state of the latest run
func (s *indexService) Status() domain.IndexStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
